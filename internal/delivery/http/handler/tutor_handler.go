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
	TutorHandler interface {
		Ask(ctx *fiber.Ctx) error
	}

	tutorHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.TutorUsecase
	}
)

func NewTutorHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.TutorUsecase) TutorHandler {
	return &tutorHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /tutor/terms/:term
func (h *tutorHandler) Ask(ctx *fiber.Ctx) error {
	term, err := url.PathUnescape(ctx.Params("term"))
	if err != nil || term == "" {
		return response.NewFailed(domain.TUTOR_ASK_FAILED, fiber.NewError(fiber.StatusBadRequest, "term is required"), h.logger).Send(ctx)
	}

	var req entity.TutorRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.TUTOR_ASK_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Ask(ctx.UserContext(), term, req.Message)
	if err != nil {
		return response.NewFailed(domain.TUTOR_ASK_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.TUTOR_ASK_SUCCESS, result, nil).Send(ctx)
}
