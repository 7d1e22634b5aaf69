package handlers

import (
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators adds domain-aware binding tags to gin's
// validator engine so requests fail fast before reaching a service.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("courselevel", func(fl validator.FieldLevel) bool {
		switch domain.CourseLevel(fl.Field().String()) {
		case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRole(fl.Field().String())
		return ok
	})
}
