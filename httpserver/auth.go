package httpserver

import (
	"net/http"

	"cineseek/errs"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/auth/signin", s.handleSignIn)
	g.POST("/auth/signup", s.handleSignUp)
}

func (s *Server) RegisterPrivateAuthRoutes(g *echo.Group) {
	g.GET("/auth/profile", s.handleProfile)
}

// handleSignIn godoc
// @Summary Sign In
// @Description Simulated sign-in: validates the form and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} account.Session
// @Failure 400 {object} map[string]string
// @Router /api/auth/signin [post]
func (s *Server) handleSignIn(c echo.Context) error {
	if s.AccountService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "account service not configured")
	}

	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}

	session, err := s.AccountService.SignIn(c.Request().Context(), req.ToSignIn())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, session)
}

// handleSignUp godoc
// @Summary Sign Up
// @Description Simulated sign-up: validates the form and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration"
// @Success 201 {object} account.Session
// @Failure 400 {object} map[string]string
// @Router /api/auth/signup [post]
func (s *Server) handleSignUp(c echo.Context) error {
	if s.AccountService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "account service not configured")
	}

	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}

	session, err := s.AccountService.SignUp(c.Request().Context(), req.ToSignUp())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, session)
}

// handleProfile godoc
// @Summary Profile
// @Description Echo the session claims of the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/profile [get]
func (s *Server) handleProfile(c echo.Context) error {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return errs.Errorf(errs.EUNAUTHORIZED, "missing session token")
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return errs.Errorf(errs.EUNAUTHORIZED, "invalid session claims")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return c.JSON(http.StatusOK, map[string]string{
		"email": email,
		"name":  name,
	})
}
