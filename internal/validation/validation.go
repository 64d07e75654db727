package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Custom tags backed by the field predicates
const (
	TagEmail    = "catalog_email"
	TagPhone    = "catalog_phone"
	TagPassword = "catalog_password"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	register := func(tag string, fn func(string) bool) {
		err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
		if err != nil {
			panic(err)
		}
	}

	register(TagEmail, Email)
	register(TagPhone, Phone)
	register(TagPassword, Password)
}

// Contact is the customer input checked before an account is created
type Contact struct {
	Email    string `json:"email" yaml:"email" validate:"required,catalog_email"`
	Phone    string `json:"phone" yaml:"phone" validate:"omitempty,catalog_phone"`
	Password string `json:"password" yaml:"password" validate:"required,catalog_password"`
}

// Struct validates a struct against its validation tags
func Struct(v interface{}) error {
	return validate.Struct(v)
}

// FieldError represents a field validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors converts validator errors to a readable format
func FormatValidationErrors(err error) []FieldError {
	var errs []FieldError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, FieldError{
				Field:   e.Namespace(),
				Message: getErrorMessage(e),
			})
		}
	}

	return errs
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case TagEmail:
		return "Invalid email format"
	case TagPhone:
		return "Invalid phone format"
	case TagPassword:
		return "Password must be at least 8 letters, digits or underscores with a digit, a lowercase and an uppercase letter"
	case "oneof":
		return "Value must be one of: " + e.Param()
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "lte":
		return "Value must be less than or equal to " + e.Param()
	default:
		return "Invalid value"
	}
}
