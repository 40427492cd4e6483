package handlers

import (
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCategory checks a field against the fixed department enumeration.
var validCategory validator.Func = func(fl validator.FieldLevel) bool {
	switch domain.Category(fl.Field().String()) {
	case domain.CategoryTelecalling,
		domain.CategoryWebDevelopment,
		domain.CategoryBlogs,
		domain.CategorySocialMedia,
		domain.CategoryAdmin:
		return true
	}
	return false
}

// registerCustomValidators installs app-specific binding validations on gin's
// validator engine. Must run once before any route handles a request.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", validCategory)
	}
}
