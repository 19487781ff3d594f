package auth

import (
	"crypto/rsa"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// プロバイダー発行のアクセストークンをローカル検証する。
// 鍵はプロバイダーの公開鍵（PEM）。署名方式はRS256固定。
type TokenVerifier struct {
	pub *rsa.PublicKey
}

func NewTokenVerifier(publicKeyPEM string) (*TokenVerifier, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, err
	}
	return &TokenVerifier{pub: pub}, nil
}

// Verify は署名と有効期限を確認してsub（ユーザーID）を返す。
func (v *TokenVerifier) Verify(rawToken string) (string, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodRS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.pub, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("invalid sub")
	}

	return sub, nil
}
