package handler

import (
	"net/http"
	"os"
	"time"

	"storefront/internal/auth"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /auth-callback のHTTP。レスポンスは常にリダイレクト（JSONは返さない）。
type AuthHandler struct {
	uc           *usecase.AuthCallbackUsecase
	cookieSecure bool
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthCallbackUsecase) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		cookieSecure: envBool("COOKIE_SECURE", true),
	}
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/auth-callback", h.callback)
}

func (h *AuthHandler) callback(c echo.Context) error {
	code := c.QueryParam("code")
	next := c.QueryParam("next")

	res := h.uc.Execute(c.Request().Context(), code, next)

	// 成功時だけセッションクッキーを発行する
	if res.Session != nil {
		h.setSessionCookie(c, res.Session)
	}

	return c.Redirect(http.StatusFound, res.RedirectURL)
}

// アクセストークンをCookieにセット。
func (h *AuthHandler) setSessionCookie(c echo.Context, session *auth.Session) {
	cookie := &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    session.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresIn > 0 {
		cookie.Expires = time.Now().Add(time.Duration(session.ExpiresIn) * time.Second)
	}

	c.SetCookie(cookie)
}
