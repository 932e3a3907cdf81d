package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Letter and category codes appear inside generated document numbers, so they
// are restricted to uppercase alphanumerics with ._- separators.
var codePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9._-]*$`)

// registerCustomValidators installs domain validation tags on gin's binding engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("lettercode", func(fl validator.FieldLevel) bool {
			return codePattern.MatchString(fl.Field().String())
		})
	}
}
