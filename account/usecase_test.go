// nolint: funlen
package account_test

import (
	"context"
	"testing"

	"cineseek/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) GenerateSessionToken(email, name string) (string, error) {
	args := m.Called(email, name)
	return args.String(0), args.Error(1)
}

func TestSignInValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      account.SignIn
		expected error
	}{
		{
			name:     "missing email",
			req:      account.SignIn{Password: "secret123"},
			expected: account.ErrEmailRequired,
		},
		{
			name:     "malformed email",
			req:      account.SignIn{Email: "not-an-email", Password: "secret123"},
			expected: account.ErrEmailInvalid,
		},
		{
			name:     "missing password",
			req:      account.SignIn{Email: "jane@mail.com"},
			expected: account.ErrPasswordRequired,
		},
		{
			name:     "password too short",
			req:      account.SignIn{Email: "jane@mail.com", Password: "abc"},
			expected: account.ErrPasswordTooShort,
		},
		{
			name: "valid",
			req:  account.SignIn{Email: "jane@mail.com", Password: "secret123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.Validate())
		})
	}
}

func TestSignUpValidation(t *testing.T) {
	valid := account.SignUp{
		FullName:        "Jane Doe",
		Email:           "jane@mail.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		AgreeToTerms:    true,
	}

	tests := []struct {
		name     string
		mutate   func(*account.SignUp)
		expected error
	}{
		{
			name:   "valid",
			mutate: func(r *account.SignUp) {},
		},
		{
			name:     "missing name",
			mutate:   func(r *account.SignUp) { r.FullName = "  " },
			expected: account.ErrNameRequired,
		},
		{
			name:     "name too short",
			mutate:   func(r *account.SignUp) { r.FullName = "J" },
			expected: account.ErrNameTooShort,
		},
		{
			name:     "short password",
			mutate:   func(r *account.SignUp) { r.Password = "Ab1!" },
			expected: account.ErrSignUpPasswordShort,
		},
		{
			name: "weak password",
			mutate: func(r *account.SignUp) {
				r.Password = "alllowercase"
				r.ConfirmPassword = "alllowercase"
			},
			expected: account.ErrPasswordTooWeak,
		},
		{
			name:     "missing confirmation",
			mutate:   func(r *account.SignUp) { r.ConfirmPassword = "" },
			expected: account.ErrConfirmationRequired,
		},
		{
			name:     "confirmation mismatch",
			mutate:   func(r *account.SignUp) { r.ConfirmPassword = "Different1!" },
			expected: account.ErrPasswordMismatch,
		},
		{
			name:     "terms not accepted",
			mutate:   func(r *account.SignUp) { r.AgreeToTerms = false },
			expected: account.ErrTermsNotAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Equal(t, tt.expected, req.Validate())
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		expected int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdefgh", 25},
		{"Abcdefgh", 50},
		{"Abcdefg1", 75},
		{"Abcdef1!", 100},
		{"Ab1!", 75}, // short but varied
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.expected, account.PasswordStrength(tt.password))
		})
	}
}

func TestSignIn(t *testing.T) {
	t.Run("issues a session token for well-formed credentials", func(t *testing.T) {
		tokens := new(MockTokenProvider)
		uc := account.NewUsecase(tokens)

		tokens.On("GenerateSessionToken", "jane@mail.com", "").Return("signed-token", nil).Once()

		got, err := uc.SignIn(context.Background(), account.SignIn{Email: "jane@mail.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, account.Session{Token: "signed-token", Email: "jane@mail.com"}, got)
		tokens.AssertExpectations(t)
	})

	t.Run("does not issue a token for invalid input", func(t *testing.T) {
		tokens := new(MockTokenProvider)
		uc := account.NewUsecase(tokens)

		_, err := uc.SignIn(context.Background(), account.SignIn{Email: "jane@mail.com", Password: "abc"})

		assert.Equal(t, account.ErrPasswordTooShort, err)
		tokens.AssertNotCalled(t, "GenerateSessionToken")
	})
}

func TestSignUp(t *testing.T) {
	t.Run("issues a session token with the trimmed name", func(t *testing.T) {
		tokens := new(MockTokenProvider)
		uc := account.NewUsecase(tokens)

		tokens.On("GenerateSessionToken", "jane@mail.com", "Jane Doe").Return("signed-token", nil).Once()

		got, err := uc.SignUp(context.Background(), account.SignUp{
			FullName:        "  Jane Doe  ",
			Email:           "jane@mail.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "Str0ng!pass",
			AgreeToTerms:    true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "signed-token", got.Token)
		tokens.AssertExpectations(t)
	})
}
