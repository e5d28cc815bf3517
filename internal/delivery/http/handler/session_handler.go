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
	SessionHandler interface {
		Create(ctx *fiber.Ctx) error
		Delete(ctx *fiber.Ctx) error
		Progress(ctx *fiber.Ctx) error
		MarkLearned(ctx *fiber.Ctx) error
		UnmarkLearned(ctx *fiber.Ctx) error
		NextQuestion(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
	}

	sessionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.LearningUsecase
	}
)

func NewSessionHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.LearningUsecase) SessionHandler {
	return &sessionHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /sessions
func (h *sessionHandler) Create(ctx *fiber.Ctx) error {
	return response.NewCreated(domain.SESSION_CREATE_SUCCESS, h.usecase.CreateSession(ctx.UserContext())).Send(ctx)
}

// DELETE /sessions/:session_id
func (h *sessionHandler) Delete(ctx *fiber.Ctx) error {
	if err := h.usecase.EndSession(ctx.UserContext(), ctx.Params("session_id")); err != nil {
		return response.NewFailed(domain.SESSION_DELETE_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_DELETE_SUCCESS, nil, nil).Send(ctx)
}

// GET /sessions/:session_id/progress
func (h *sessionHandler) Progress(ctx *fiber.Ctx) error {
	result, err := h.usecase.Progress(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.PROGRESS_GET_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_GET_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/learned
func (h *sessionHandler) MarkLearned(ctx *fiber.Ctx) error {
	var req entity.MarkLearnedRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.LEARNED_MARK_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.MarkLearned(ctx.UserContext(), ctx.Params("session_id"), req.Term)
	if err != nil {
		return response.NewFailed(domain.LEARNED_MARK_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.LEARNED_MARK_SUCCESS, result, nil).Send(ctx)
}

// DELETE /sessions/:session_id/learned/:term
func (h *sessionHandler) UnmarkLearned(ctx *fiber.Ctx) error {
	term, err := url.PathUnescape(ctx.Params("term"))
	if err != nil || term == "" {
		return response.NewFailed(domain.LEARNED_UNMARK_FAILED, fiber.NewError(fiber.StatusBadRequest, "term is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.UnmarkLearned(ctx.UserContext(), ctx.Params("session_id"), term)
	if err != nil {
		return response.NewFailed(domain.LEARNED_UNMARK_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.LEARNED_UNMARK_SUCCESS, result, nil).Send(ctx)
}

// GET /sessions/:session_id/quiz/next?mode=random|adaptive&category=&include_answer=false
func (h *sessionHandler) NextQuestion(ctx *fiber.Ctx) error {
	var query entity.NextQuestionQuery
	if err := h.validator.ParseAndValidateQuery(ctx, &query); err != nil {
		return response.NewFailed(domain.QUIZ_NEXT_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.NextQuestion(ctx.UserContext(), ctx.Params("session_id"), query)
	if err != nil {
		return response.NewFailed(domain.QUIZ_NEXT_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_NEXT_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/quiz/answer
func (h *sessionHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), ctx.Params("session_id"), req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, asFiberError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, result, nil).Send(ctx)
}
