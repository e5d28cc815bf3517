package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewValidator() *Validator {
	validator := validator.New(validator.WithRequiredStructEnabled())

	// Registering english translator
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validator, trans)

	// Field names follow the json tag, then the query tag.
	validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{
		validate: validator,
		trans:    trans,
	}
}

// ParseAndValidate decodes the request body into req and validates it.
func (v *Validator) ParseAndValidate(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is not valid")
	}
	return v.Struct(req)
}

// ParseAndValidateQuery decodes the query string into req and validates it.
func (v *Validator) ParseAndValidateQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameters are not valid")
	}
	return v.Struct(req)
}

func (v *Validator) Struct(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	errors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Request is not valid")
	}

	return NewFieldsError(v.translateError(errors))
}

func (v *Validator) translateError(errs validator.ValidationErrors) (fields map[string]string) {
	fields = make(map[string]string)
	for _, e := range errs {
		fields[e.Field()] = e.Translate(v.trans)
	}
	return fields
}
