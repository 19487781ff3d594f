package server

import (
	"storefront/internal/handler"
	"storefront/internal/logger"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

// New は全ハンドラのルートを束ねたechoを返す。
func New(
	log *logger.Logger,
	profileH *handler.ProfileHandler,
	brandH *handler.BrandHandler,
	cartH *handler.CartHandler,
	authH *handler.AuthHandler,
	sitemapH *handler.SitemapHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(log))

	profileH.RegisterRoutes(e)
	brandH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	sitemapH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
