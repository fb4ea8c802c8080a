// Package request разбирает и проверяет тела HTTP запросов.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/domain/entities"
)

const (
	fieldBody = "body"

	msgInvalidJSON = "must be a valid JSON object"
	msgRequired    = "is required"
	msgInvalid     = "is invalid"
	msgUsername    = "may contain only letters, numbers, and @/./+/-/_ characters"

	tagUsername = "username"
)

// Normalizer приводит поля запроса к каноничному виду до проверки тегов.
type Normalizer interface {
	Normalize()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(tagUsername, func(fl validator.FieldLevel) bool {
		return entities.ValidUsername(fl.Field().String())
	})
	return v
}

// Decode разбирает JSON тело запроса в dst и проверяет его по тегам validate.
// Если dst реализует Normalizer, поля нормализуются перед проверкой.
// Любая ошибка возвращается как *entities.ValidationError.
func Decode(ctx fiber.Ctx, dst any) error {
	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().JSON(dst); err != nil {
			return bindError(err)
		}
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}

	return Validate(dst)
}

// Validate проверяет структуру по тегам validate.
func Validate(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return entities.NewValidationError(fieldBody, msgInvalid)
	}

	verr := &entities.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
	return verr
}

func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return entities.NewValidationError(typeErr.Field, fmt.Sprintf("must be a %s", jsonKind(typeErr.Type)))
	}
	return entities.NewValidationError(fieldBody, msgInvalidJSON)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case tagUsername:
		return msgUsername
	default:
		return msgInvalid
	}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
