package contact

import (
	"regexp"

	"cineseek/errs"
)

var (
	ErrInvalidName    = errs.Errorf(errs.EINVALID, "invalid name")
	ErrInvalidEmail   = errs.Errorf(errs.EINVALID, "invalid email")
	ErrInvalidMessage = errs.Errorf(errs.EINVALID, "invalid message")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type Contact struct {
	ID      string
	Name    string
	Email   string
	Subject string
	Message string
}

func (c Contact) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}

	if !emailPattern.MatchString(c.Email) {
		return ErrInvalidEmail
	}

	if c.Message == "" {
		return ErrInvalidMessage
	}

	return nil
}
