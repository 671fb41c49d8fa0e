package utils

import (
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	Validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	Validator := &CustomValidator{validator.New()}
	Validator.ValidatorRegistery()
	return Validator
}

// RegisterGinValidations adds the custom tags to the validator gin uses for
// ShouldBind.
func RegisterGinValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		(&CustomValidator{v}).ValidatorRegistery()
	}
}

func (c *CustomValidator) ValidatorRegistery() {
	c.Validator.RegisterValidation("isphone", c.IsValidPhone)
	c.Validator.RegisterValidation("hhmm", c.IsValidClock)
}

// IsValidPhone accepts an optional leading "+" followed by 8 to 15 digits.
// Spaces, dashes and parentheses are ignored.
func (c *CustomValidator) IsValidPhone(fl validator.FieldLevel) bool {
	phoneNumber := strings.TrimPrefix(strings.TrimSpace(fl.Field().String()), "+")
	digits := 0
	for _, char := range phoneNumber {
		switch {
		case unicode.IsDigit(char):
			digits++
		case char == ' ' || char == '-' || char == '(' || char == ')':
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}

// IsValidClock accepts a 24h "HH:MM" time.
func (c *CustomValidator) IsValidClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
