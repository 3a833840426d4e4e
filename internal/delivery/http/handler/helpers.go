package handler

import (
	"errors"

	"servi-search/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New()

// bindAndValidate decodes the JSON body into req and runs its validate tags.
// Field errors are returned as {field: tag} under data.
func bindAndValidate(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, err)
	}
	return nil
}
