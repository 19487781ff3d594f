package handler

import (
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /profile-summary のHTTP
type ProfileHandler struct {
	gate *auth.Gate
	uc   *usecase.ProfileUsecase
}

// DI
func NewProfileHandler(gate *auth.Gate, uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{gate: gate, uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/profile-summary", h.summary)
}

// 未認証時はfirstNameを出さない（omitempty）
type profileSummaryResponse struct {
	Authenticated bool   `json:"authenticated"`
	FirstName     string `json:"firstName,omitempty"`
}

func (h *ProfileHandler) summary(c echo.Context) error {
	identity, ok := h.gate.Authorize(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, profileSummaryResponse{Authenticated: false})
	}

	out := h.uc.GetProfileSummary(identity)

	return c.JSON(http.StatusOK, profileSummaryResponse{
		Authenticated: true,
		FirstName:     out.FirstName,
	})
}
