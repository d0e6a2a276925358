package httpserver

import (
	"net/http"

	"cineseek/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes(g *echo.Group) {
	g.POST("/contacts", s.handleAddContact)
}

func (s *Server) RegisterPrivateContactRoutes(g *echo.Group) {
	g.GET("/contacts", s.handleListContacts)
}

// handleAddContact godoc
// @Summary Submit Contact Form
// @Description Store one contact-form submission
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body AddContactRequest true "Submission"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/contacts [post]
func (s *Server) handleAddContact(c echo.Context) error {
	if s.ContactService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "contact service not configured")
	}

	var req AddContactRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := s.ContactService.AddContact(c.Request().Context(), req.ToContact()); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"status": "received"})
}

// handleListContacts godoc
// @Summary List Contact Submissions
// @Tags contacts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/contacts [get]
func (s *Server) handleListContacts(c echo.Context) error {
	if s.ContactService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "contact service not configured")
	}

	contacts, err := s.ContactService.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"contacts": contacts})
}
