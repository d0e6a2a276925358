package account

import (
	"context"
	"strings"
)

// Session is the simulated sign-in result handed back to the client.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Service interface {
	SignIn(ctx context.Context, req SignIn) (Session, error)
	SignUp(ctx context.Context, req SignUp) (Session, error)
}

type TokenProvider interface {
	GenerateSessionToken(email, name string) (string, error)
}

type Usecase struct {
	tokens TokenProvider
}

func NewUsecase(tokens TokenProvider) *Usecase {
	return &Usecase{tokens: tokens}
}

// SignIn validates the form and issues a session token. There is no
// credential store to check against.
func (uc *Usecase) SignIn(_ context.Context, req SignIn) (Session, error) {
	if err := req.Validate(); err != nil {
		return Session{}, err
	}
	token, err := uc.tokens.GenerateSessionToken(req.Email, "")
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Email: req.Email}, nil
}

func (uc *Usecase) SignUp(_ context.Context, req SignUp) (Session, error) {
	if err := req.Validate(); err != nil {
		return Session{}, err
	}
	name := strings.TrimSpace(req.FullName)
	token, err := uc.tokens.GenerateSessionToken(req.Email, name)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Email: req.Email, Name: name}, nil
}
