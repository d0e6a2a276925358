package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cineseek/account"
	"cineseek/httpserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) SignIn(ctx context.Context, req account.SignIn) (account.Session, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(account.Session), args.Error(1)
}

func (m *MockAccountService) SignUp(ctx context.Context, req account.SignUp) (account.Session, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(account.Session), args.Error(1)
}

func TestSignIn(t *testing.T) {
	server := httpserver.Default(testConfig())
	svc := new(MockAccountService)
	server.AccountService = svc

	t.Run("should returns 200 with a session", func(t *testing.T) {
		form := account.SignIn{Email: "jane@example.com", Password: "secret1", RememberMe: true}
		session := account.Session{Token: "signed-token", Email: "jane@example.com"}
		svc.On("SignIn", mock.Anything, form).Return(session, nil).Once()
		request := newAuthRequest("/api/auth/signin", `{"email":"jane@example.com","password":"secret1","rememberMe":true}`)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "Expected 200 OK")
		var got account.Session
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, session, got)
		svc.AssertExpectations(t)
	})

	t.Run("should returns 400 with the form message when validation fails", func(t *testing.T) {
		form := account.SignIn{Password: "secret1"}
		svc.On("SignIn", mock.Anything, form).Return(account.Session{}, account.ErrEmailRequired).Once()
		request := newAuthRequest("/api/auth/signin", `{"password":"secret1"}`)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "Expected 400 Bad Request")
		assert.Equal(t, "Email is required", decodeErrorBody(t, recorder))
		svc.AssertExpectations(t)
	})
}

func TestSignUp(t *testing.T) {
	server := httpserver.Default(testConfig())
	svc := new(MockAccountService)
	server.AccountService = svc

	t.Run("should returns 201 with a session", func(t *testing.T) {
		form := account.SignUp{
			FullName:        "Jane Doe",
			Email:           "jane@example.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "Str0ng!pass",
			AgreeToTerms:    true,
		}
		session := account.Session{Token: "signed-token", Email: "jane@example.com", Name: "Jane Doe"}
		svc.On("SignUp", mock.Anything, form).Return(session, nil).Once()
		body := `{"fullName":"Jane Doe","email":"jane@example.com","password":"Str0ng!pass","confirmPassword":"Str0ng!pass","agreeToTerms":true}`
		request := newAuthRequest("/api/auth/signup", body)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code, "Expected 201 Created")
		var got account.Session
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, session, got)
		svc.AssertExpectations(t)
	})

	t.Run("should returns 400 when passwords do not match", func(t *testing.T) {
		form := account.SignUp{
			FullName:        "Jane Doe",
			Email:           "jane@example.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "different",
			AgreeToTerms:    true,
		}
		svc.On("SignUp", mock.Anything, form).Return(account.Session{}, account.ErrPasswordMismatch).Once()
		body := `{"fullName":"Jane Doe","email":"jane@example.com","password":"Str0ng!pass","confirmPassword":"different","agreeToTerms":true}`
		request := newAuthRequest("/api/auth/signup", body)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "Expected 400 Bad Request")
		assert.Equal(t, "Passwords do not match", decodeErrorBody(t, recorder))
		svc.AssertExpectations(t)
	})
}

func TestProfile(t *testing.T) {
	server := httpserver.Default(testConfig())

	t.Run("should returns 200 with the session claims", func(t *testing.T) {
		token, err := signTestToken("jane@example.com", "Jane Doe")
		assert.NoError(t, err)
		request := httptest.NewRequest("GET", "/api/auth/profile", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "Expected 200 OK")
		var got map[string]string
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, "jane@example.com", got["email"])
		assert.Equal(t, "Jane Doe", got["name"])
	})

	t.Run("should returns 401 without a token", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/api/auth/profile", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "Expected 401 Unauthorized")
	})
}

func newAuthRequest(path, body string) *http.Request {
	request := httptest.NewRequest("POST", path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}
