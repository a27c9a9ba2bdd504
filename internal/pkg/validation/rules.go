package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/omerl/unirest/internal/app/models"
)

// EmailPattern validates the overall shape of an email address.
var EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

var emailRegexp = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// RegisterCustomValidators installs the custom binding rules used by request
// DTOs on gin's validator engine. Called once at bootstrap.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("semester", func(fl validator.FieldLevel) bool {
			return models.Semester(fl.Field().String()).IsValid()
		})
	}
}
