package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError is the rejection of a request before it reaches the service.
type ValidationError struct {
	Fields map[string]string
}

func (err *ValidationError) Error() string {
	return "Validation failed"
}

// newValidator reports fields by their json or query name rather than the Go name.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	// price must survive rounding to cents and fit the stored column
	_ = validate.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Float64 && models.ValidPrice(fl.Field().Float())
	})
	return validate
}

// validateStruct runs the struct's validate tags.
func validateStruct(validate *validator.Validate, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = describe(fieldErr)
	}
	return &ValidationError{Fields: fields}
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "price":
		return fmt.Sprintf("must be between 0.01 and %s after rounding to cents", models.MaxPrice.StringFixed(models.PricePlaces))
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fieldErr.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}
}

// badRequest renders a 400 for malformed or invalid input.
func badRequest(c *fiber.Ctx, err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Error(),
			"errors":  validationErr.Fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request",
		"error":   err.Error(),
	})
}
