// Package account implements the simulated sign-in/sign-up flow. Form
// rules are enforced for real, but no identity backend exists: any
// well-formed credentials yield a stateless session token.
package account

import (
	"regexp"
	"strings"
	"unicode"

	"cineseek/errs"
)

var (
	ErrEmailRequired        = errs.Errorf(errs.EINVALID, "Email is required")
	ErrEmailInvalid         = errs.Errorf(errs.EINVALID, "Email is invalid")
	ErrPasswordRequired     = errs.Errorf(errs.EINVALID, "Password is required")
	ErrPasswordTooShort     = errs.Errorf(errs.EINVALID, "Password must be at least 6 characters")
	ErrNameRequired         = errs.Errorf(errs.EINVALID, "Full name is required")
	ErrNameTooShort         = errs.Errorf(errs.EINVALID, "Full name must be at least 2 characters")
	ErrSignUpPasswordShort  = errs.Errorf(errs.EINVALID, "Password must be at least 8 characters")
	ErrPasswordTooWeak      = errs.Errorf(errs.EINVALID, "Please choose a stronger password")
	ErrConfirmationRequired = errs.Errorf(errs.EINVALID, "Please confirm your password")
	ErrPasswordMismatch     = errs.Errorf(errs.EINVALID, "Passwords do not match")
	ErrTermsNotAccepted     = errs.Errorf(errs.EINVALID, "You must agree to the terms and conditions")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type SignIn struct {
	Email      string
	Password   string
	RememberMe bool
}

func (s SignIn) Validate() error {
	if s.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(s.Email) {
		return ErrEmailInvalid
	}
	if s.Password == "" {
		return ErrPasswordRequired
	}
	if len(s.Password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

type SignUp struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
	Newsletter      bool
}

func (s SignUp) Validate() error {
	name := strings.TrimSpace(s.FullName)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if s.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(s.Email) {
		return ErrEmailInvalid
	}
	if s.Password == "" {
		return ErrPasswordRequired
	}
	if len(s.Password) < 8 {
		return ErrSignUpPasswordShort
	}
	if PasswordStrength(s.Password) < 50 {
		return ErrPasswordTooWeak
	}
	if s.ConfirmPassword == "" {
		return ErrConfirmationRequired
	}
	if s.Password != s.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !s.AgreeToTerms {
		return ErrTermsNotAccepted
	}
	return nil
}

// PasswordStrength scores a password 0-100: 25 points each for length of
// at least 8, an upper-case letter, a digit and a symbol.
func PasswordStrength(password string) int {
	strength := 0
	if len(password) >= 8 {
		strength += 25
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	if hasUpper {
		strength += 25
	}
	if hasDigit {
		strength += 25
	}
	if hasSymbol {
		strength += 25
	}
	return strength
}
