package services

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a client-side input check failure. Its message is
// meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrNoPackageSelected = &ValidationError{"Please select a VPN package first."}
	ErrRequiredFields    = &ValidationError{"Please fill in all required fields."}
	ErrInvalidEmail      = &ValidationError{"Please enter a valid email address."}
	ErrPasswordTooShort  = &ValidationError{"Password must be at least 6 characters long."}
	ErrPasswordMismatch  = &ValidationError{"Passwords do not match."}
	ErrInvalidExpiry     = &ValidationError{"Expiry days must be a positive number."}
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("vpnemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func required(values ...string) error {
	for _, v := range values {
		if validate.Var(v, "required") != nil {
			return ErrRequiredFields
		}
	}
	return nil
}

func checkEmail(email string) error {
	if validate.Var(email, "vpnemail") != nil {
		return ErrInvalidEmail
	}
	return nil
}

// SignupForm is the raw signup input.
type SignupForm struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// normalized trims the name and email; passwords are kept verbatim.
func (f SignupForm) normalized() SignupForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// Validate runs the signup checks in order and returns the first failure.
func (f SignupForm) Validate(sel *Selection) error {
	if _, ok := sel.Selected(); !ok {
		return ErrNoPackageSelected
	}
	if err := required(f.FullName, f.Email, f.Password); err != nil {
		return err
	}
	if err := checkEmail(f.Email); err != nil {
		return err
	}
	if validate.Var(f.Password, "min=6") != nil {
		return ErrPasswordTooShort
	}
	if validate.VarWithValue(f.ConfirmPassword, f.Password, "eqfield") != nil {
		return ErrPasswordMismatch
	}
	return nil
}
