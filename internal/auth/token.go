package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// セッションクッキー名。コールバックで発行し、以後の照会で読む。
const SessionCookieName = "sf_session"

// リクエストからアクセストークンを取り出す。
// クッキー優先、無ければAuthorization: Bearer。見つからなければ空文字。
func TokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return ""
	}

	//Bearer形式か確認してtokenを抜く
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
