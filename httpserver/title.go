package httpserver

import (
	"net/http"

	"cineseek/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterTitleRoutes(g *echo.Group) {
	g.POST("/generate-movie-title", s.handleGenerateTitle)
}

// handleGenerateTitle godoc
// @Summary Generate Movie Title
// @Description Generate a movie title from a plot description
// @Tags titles
// @Accept json
// @Produce json
// @Param request body GenerateTitleRequest true "Description"
// @Success 200 {object} titlegen.Title
// @Failure 400 {object} map[string]string
// @Router /api/generate-movie-title [post]
func (s *Server) handleGenerateTitle(c echo.Context) error {
	if s.TitleService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "title generator not configured")
	}

	var req GenerateTitleRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}

	title, err := s.TitleService.Generate(c.Request().Context(), req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, title)
}
