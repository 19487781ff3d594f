package auth

import (
	"context"

	"storefront/internal/domain/model"
)

// リクエストの資格情報をIdentityに解決する約束。
type SessionResolver interface {
	Resolve(ctx context.Context, rawToken string) (*model.Identity, error)
}

// ローカル署名検証→プロバイダー照会の順で解決する実装。
// 署名が壊れたトークンでプロバイダーを叩かないための二段構え。
type ProviderSessionResolver struct {
	verifier *TokenVerifier
	client   ProviderClient
}

func NewProviderSessionResolver(verifier *TokenVerifier, client ProviderClient) *ProviderSessionResolver {
	return &ProviderSessionResolver{
		verifier: verifier,
		client:   client,
	}
}

func (r *ProviderSessionResolver) Resolve(ctx context.Context, rawToken string) (*model.Identity, error) {
	if _, err := r.verifier.Verify(rawToken); err != nil {
		return nil, err
	}

	return r.client.FetchUser(ctx, rawToken)
}
