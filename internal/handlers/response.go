package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

// message writes the {"message": ...} body every resource uses.
func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": msg,
	})
}

// newValidator returns a validator that reports fields by their JSON name
// and knows the notblank tag.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validationMessage flattens validator errors into one line per field.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fmt.Sprintf("%s: This field cannot be left blank!", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: Field '%s' failed on the '%s' tag", e.Field(), e.Field(), e.Tag()))
		}
	}
	return strings.Join(msgs, " ")
}
