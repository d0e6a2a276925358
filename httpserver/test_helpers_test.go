//nolint:unused
package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"cineseek/pkg/config"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testJWTSecret = "test-jwt-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testJWTSecret
	cfg.TMDB.APIKey = "test-tmdb-key"
	return cfg
}

func signTestToken(email, name string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"type":  "session",
		"exp":   time.Now().Add(1 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(testJWTSecret))
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &body)
	assert.NoError(t, err, "Expected a JSON error body")
	return body.Error
}
