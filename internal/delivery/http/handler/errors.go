package handler

import (
	"errors"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/usecase"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/validate"
	"github.com/evandrarf/cryptolearn-be/internal/session"
	"github.com/gofiber/fiber/v2"
)

// asFiberError maps domain errors onto HTTP statuses. Validation and fiber
// errors pass through untouched.
func asFiberError(err error) error {
	var fe *fiber.Error
	var fields *validate.FieldsError
	if errors.As(err, &fe) || errors.As(err, &fields) {
		return err
	}

	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, glossary.ErrUnknownTerm):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrQuestionNotPending),
		errors.Is(err, glossary.ErrUnknownCategory),
		errors.Is(err, usecase.ErrInvalidQuery),
		errors.Is(err, usecase.ErrSessionRequired),
		errors.Is(err, usecase.ErrAnswerOutOfRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
