package handler

import (
	"strings"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/domain"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/entity"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/usecase"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/response"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	MarketHandler interface {
		Prices(ctx *fiber.Ctx) error
		Trending(ctx *fiber.Ctx) error
	}

	marketHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.MarketUsecase
	}
)

func NewMarketHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.MarketUsecase) MarketHandler {
	return &marketHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /market/prices?ids=bitcoin,ethereum
func (h *marketHandler) Prices(ctx *fiber.Ctx) error {
	var query entity.PricesQuery
	if err := h.validator.ParseAndValidateQuery(ctx, &query); err != nil {
		return response.NewFailed(domain.MARKET_PRICES_FAILED, err, h.logger).Send(ctx)
	}

	var ids []string
	for _, id := range strings.Split(query.IDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	result, err := h.usecase.Prices(ctx.UserContext(), ids)
	if err != nil {
		return response.NewFailed(domain.MARKET_PRICES_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	if !result.Available {
		return response.NewSuccess(domain.MARKET_UNAVAILABLE, result, nil).Send(ctx)
	}
	return response.NewSuccess(domain.MARKET_PRICES_SUCCESS, result, nil).Send(ctx)
}

// GET /market/trending
func (h *marketHandler) Trending(ctx *fiber.Ctx) error {
	result, err := h.usecase.Trending(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.MARKET_PRICES_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	if !result.Available {
		return response.NewSuccess(domain.MARKET_UNAVAILABLE, result, nil).Send(ctx)
	}
	return response.NewSuccess(domain.MARKET_TRENDING_SUCCESS, result, nil).Send(ctx)
}
