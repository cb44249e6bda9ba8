package auth

import (
	"unicode"

	"skillspot/api"
	"skillspot/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRegistration checks the registration payload before it is sent.
// Field rules come from the struct tags; the password additionally has to
// pass the complexity check so obviously bad submissions never reach the
// server.
func ValidateRegistration(req api.RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}
	return hasUpper && hasLower && hasNumber
}
