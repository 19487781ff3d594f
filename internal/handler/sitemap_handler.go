package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sitemap.xml の公開API
type SitemapHandler struct {
	uc *usecase.SitemapUsecase
}

// DI
func NewSitemapHandler(uc *usecase.SitemapUsecase) *SitemapHandler {
	return &SitemapHandler{uc: uc}
}

func (h *SitemapHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sitemap.xml", h.sitemap)
}

func (h *SitemapHandler) sitemap(c echo.Context) error {
	body, err := h.uc.BuildSitemap(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}
