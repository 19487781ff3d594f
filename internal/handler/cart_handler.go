package handler

import (
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart-count のHTTP
type CartHandler struct {
	gate *auth.Gate
	uc   *usecase.CartUsecase
}

// DI
func NewCartHandler(gate *auth.Gate, uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{gate: gate, uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart-count", h.count)
}

type cartCountResponse struct {
	Count int64 `json:"count"`
}

// 未認証は401、クエリ失敗は500。ボディはどちらも {count:0} で固定
// （フロントの描画が例外分岐しないように。切り分けはstatusとログで行う）。
func (h *CartHandler) count(c echo.Context) error {
	identity, ok := h.gate.Authorize(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, cartCountResponse{Count: 0})
	}

	total, err := h.uc.GetCartItemTotal(c.Request().Context(), identity)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, cartCountResponse{Count: 0})
	}

	return c.JSON(http.StatusOK, cartCountResponse{Count: total})
}
