package usecase

import (
	"context"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/logger"
)

const (
	// ログイン後のデフォルト遷移先
	DefaultNextPath = "/account"
	// 失敗時はログイン画面へ。理由は固定の目印だけ
	loginFailurePath = "/login?error=auth_callback_failed"
)

// AuthCallbackUsecase は認可コードをセッションに交換してリダイレクト先を決める。
// Start → ExchangingCode → {Authenticated, Failed} の一本道。リトライ無し。
type AuthCallbackUsecase struct {
	provider auth.ProviderClient
	baseURL  string
	log      *logger.Logger
}

func NewAuthCallbackUsecase(provider auth.ProviderClient, baseURL string, log *logger.Logger) *AuthCallbackUsecase {
	return &AuthCallbackUsecase{
		provider: provider,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log,
	}
}

// CallbackResult は終端状態。SessionがnilならFailed。
type CallbackResult struct {
	RedirectURL string
	Session     *auth.Session
}

// Execute はコールバック1回分を処理する。
func (u *AuthCallbackUsecase) Execute(ctx context.Context, code string, next string) CallbackResult {
	// コードが無ければ交換は試みずFailed
	if code == "" {
		return CallbackResult{RedirectURL: u.absURL(loginFailurePath)}
	}

	session, err := u.provider.ExchangeCode(ctx, code)
	if err != nil {
		// 生のエラーは外に出さない。サーバー側にだけ残す
		u.log.Warn("auth code exchange failed", "error", err)
		return CallbackResult{RedirectURL: u.absURL(loginFailurePath)}
	}

	return CallbackResult{
		RedirectURL: u.absURL(sanitizeNextPath(next)),
		Session:     session,
	}
}

// ローカルパス以外はデフォルトに落とす（オープンリダイレクト防止）。
func sanitizeNextPath(next string) string {
	if next == "" {
		return DefaultNextPath
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return DefaultNextPath
	}
	return next
}

func (u *AuthCallbackUsecase) absURL(path string) string {
	return u.baseURL + path
}
