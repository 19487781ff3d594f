package main

import (
	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数直）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Brand{},
		&model.Product{},
		&model.CartItem{},
	); err != nil {
		log.Fatal("migrate failed", "error", err)
	}

	//Repository（GORM実装）生成
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)

	//認証プロバイダー（プロセスで1つ）
	provider := auth.NewHTTPProviderClient(cfg.AuthURL)
	verifier, err := auth.NewTokenVerifier(cfg.AuthPublicKey)
	if err != nil {
		log.Fatal("invalid AUTH_PUBLIC_KEY", "error", err)
	}
	resolver := auth.NewProviderSessionResolver(verifier, provider)
	gate := auth.NewGate(resolver, log)

	//Usecase生成
	profileUC := usecase.NewProfileUsecase()
	brandUC := usecase.NewBrandUsecase(brandRepo, log)
	cartUC := usecase.NewCartUsecase(cartItemRepo, log)
	callbackUC := usecase.NewAuthCallbackUsecase(provider, cfg.BaseURL, log)
	sitemapUC := usecase.NewSitemapUsecase(brandRepo, cfg.BaseURL, log)

	//Handler生成
	profileH := handler.NewProfileHandler(gate, profileUC)
	brandH := handler.NewBrandHandler(brandUC)
	cartH := handler.NewCartHandler(gate, cartUC)
	authH := handler.NewAuthHandler(callbackUC)
	sitemapH := handler.NewSitemapHandler(sitemapUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(log, profileH, brandH, cartH, authH, sitemapH)
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
