package auth

import (
	"storefront/internal/domain/model"
	"storefront/internal/logger"

	"github.com/labstack/echo/v4"
)

// Gate は「セッション解決→ステータス確認」の認可ゲート。
// 呼び出し側から見える結果はtrue/falseだけ。
// セッション無し・解決失敗・非ACTIVEは全て同じfalseにする
// （アカウント状態の違いを外から区別させない）。
type Gate struct {
	resolver SessionResolver
	log      *logger.Logger
}

func NewGate(resolver SessionResolver, log *logger.Logger) *Gate {
	return &Gate{
		resolver: resolver,
		log:      log,
	}
}

// Authorize はリクエストを認可してIdentityを返す。
func (g *Gate) Authorize(c echo.Context) (model.Identity, bool) {
	rawToken := TokenFromRequest(c)
	if rawToken == "" {
		return model.Identity{}, false
	}

	identity, err := g.resolver.Resolve(c.Request().Context(), rawToken)
	if err != nil || identity == nil {
		// 失敗の詳細はサーバー側だけに残す
		if err != nil {
			g.log.Debug("session resolve failed", "error", err)
		}
		return model.Identity{}, false
	}

	if !identity.IsActive() {
		return model.Identity{}, false
	}

	return *identity, true
}
