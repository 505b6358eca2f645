package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/arnoldagaba/11th-President/internal/format"
)

// Register the Ugandan phone number check with gin's validator so request
// structs can use it as a binding tag.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ugphone", func(fl validator.FieldLevel) bool {
			return format.ValidatePhoneNumber(fl.Field().String())
		})
	}
}
