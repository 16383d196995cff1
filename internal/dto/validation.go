package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom validation rules on gin's binding
// engine. Call once at startup before routes are registered.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("platformrole", validatePlatformRole)
	}
}

func validatePlatformRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).IsValid()
}
