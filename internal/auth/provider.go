package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
)

var ErrExchangeFailed = errors.New("code exchange failed")

// コード交換で得られるセッション。
type Session struct {
	AccessToken string
	ExpiresIn   int64 // 秒
}

// 認証プロバイダーとの約束。
// ユーザーの作成・更新はプロバイダー側なので読み取りと交換だけ。
type ProviderClient interface {
	FetchUser(ctx context.Context, accessToken string) (*model.Identity, error)
	ExchangeCode(ctx context.Context, code string) (*Session, error)
}

// HTTPで話す実装。プロセス内で1つだけ作って使い回す。
type HTTPProviderClient struct {
	baseURL string
	hc      *http.Client
}

func NewHTTPProviderClient(baseURL string) *HTTPProviderClient {
	return &HTTPProviderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

// プロバイダーが返すユーザーJSON
type providerUserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Status    string `json:"status"`
}

// FetchUser はトークンのユーザーをプロバイダーから取得する。
func (p *HTTPProviderClient) FetchUser(ctx context.Context, accessToken string) (*model.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := p.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned %d", res.StatusCode)
	}

	var body providerUserResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.ID == "" {
		return nil, errors.New("provider returned empty user id")
	}

	return &model.Identity{
		ID:        body.ID,
		FirstName: body.FirstName,
		Status:    model.IdentityStatus(body.Status),
	}, nil
}

type exchangeRequest struct {
	AuthCode string `json:"auth_code"`
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeCode は認可コードをセッションに交換する。
// コードは使い捨てなのでリトライしない（呼び出しは1回だけ）。
func (p *HTTPProviderClient) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	payload, err := json.Marshal(exchangeRequest{AuthCode: code})
	if err != nil {
		return nil, err
	}

	url := p.baseURL + "/auth/v1/token?grant_type=authorization_code"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, ErrExchangeFailed
	}

	var body exchangeResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.AccessToken == "" {
		return nil, ErrExchangeFailed
	}

	return &Session{
		AccessToken: body.AccessToken,
		ExpiresIn:   body.ExpiresIn,
	}, nil
}
