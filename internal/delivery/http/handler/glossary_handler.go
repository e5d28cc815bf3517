package handler

import (
	"net/url"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/domain"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/entity"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/usecase"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/response"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	GlossaryHandler interface {
		List(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Random(ctx *fiber.Ctx) error
		Categories(ctx *fiber.Ctx) error
		Tags(ctx *fiber.Ctx) error
		Stats(ctx *fiber.Ctx) error
	}

	glossaryHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.GlossaryUsecase
	}
)

func NewGlossaryHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.GlossaryUsecase) GlossaryHandler {
	return &glossaryHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /terms?search=&category=&difficulty=&importance=&tags=a,b&learned=any|learned|unlearned&sort=&session_id=
func (h *glossaryHandler) List(ctx *fiber.Ctx) error {
	var query entity.TermListQuery
	if err := h.validator.ParseAndValidateQuery(ctx, &query); err != nil {
		return response.NewFailed(domain.TERM_LIST_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.ListTerms(ctx.UserContext(), query)
	if err != nil {
		return response.NewFailed(domain.TERM_LIST_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TERM_LIST_SUCCESS, result, response.ListMeta{Total: len(result.Terms)}).Send(ctx)
}

// GET /terms/:term?session_id=
func (h *glossaryHandler) Get(ctx *fiber.Ctx) error {
	term, err := url.PathUnescape(ctx.Params("term"))
	if err != nil || term == "" {
		return response.NewFailed(domain.TERM_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "term is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.GetTerm(ctx.UserContext(), term, ctx.Query("session_id"))
	if err != nil {
		return response.NewFailed(domain.TERM_GET_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TERM_GET_SUCCESS, result, nil).Send(ctx)
}

// GET /terms/random?category=&session_id=
func (h *glossaryHandler) Random(ctx *fiber.Ctx) error {
	var query entity.RandomTermQuery
	if err := h.validator.ParseAndValidateQuery(ctx, &query); err != nil {
		return response.NewFailed(domain.TERM_RANDOM_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.RandomTerm(ctx.UserContext(), query)
	if err != nil {
		return response.NewFailed(domain.TERM_RANDOM_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TERM_RANDOM_SUCCESS, result, nil).Send(ctx)
}

// GET /catalog/categories
func (h *glossaryHandler) Categories(ctx *fiber.Ctx) error {
	categories := h.usecase.Categories(ctx.UserContext())
	return response.NewSuccess(domain.CATALOG_GET_SUCCESS, categories, response.ListMeta{Total: len(categories)}).Send(ctx)
}

// GET /catalog/tags
func (h *glossaryHandler) Tags(ctx *fiber.Ctx) error {
	tags := h.usecase.Tags(ctx.UserContext())
	return response.NewSuccess(domain.CATALOG_GET_SUCCESS, tags, response.ListMeta{Total: len(tags)}).Send(ctx)
}

// GET /catalog/stats
func (h *glossaryHandler) Stats(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.CATALOG_GET_SUCCESS, h.usecase.Stats(ctx.UserContext()), nil).Send(ctx)
}
