package api

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"shopapi.app/internal/core/product"
	"shopapi.app/pkg/errors"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators installs the custom binding tags on gin's validator engine
// and makes field errors report the JSON or form name
func registerValidators() error {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		engine.RegisterTagNameFunc(fieldName)
		validatorsErr = engine.RegisterValidation("category", validateCategory)
	})
	return validatorsErr
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

func validateCategory(fl validator.FieldLevel) bool {
	return product.Category(strings.TrimSpace(fl.Field().String())).IsValid()
}

// bindingError turns a binding failure into a validation error naming the first bad field
func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errors.NewValidationError("invalid request format")
	}

	fe := validationErrs[0]
	switch fe.Tag() {
	case "required":
		return errors.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "category":
		return errors.NewValidationError(fmt.Sprintf("%s must be one of: %s", fe.Field(), categoryNames()))
	case "gt":
		return errors.NewValidationError(fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
	case "min", "gte":
		return errors.NewValidationError(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
	case "max", "lte":
		return errors.NewValidationError(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
	default:
		return errors.NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

func categoryNames() string {
	categories := product.Categories()
	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = string(category)
	}
	return strings.Join(names, ", ")
}
