package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"storefront/internal/auth"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

// =====================
// helper
// =====================

func mustGenerateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("MarshalPKIXPublicKey failed: %v", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	})

	return key, string(pemBytes)
}

func mustSignRS256(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

// =====================
// TokenVerifier
// =====================

func TestTokenVerifier_InvalidPEM(t *testing.T) {
	_, err := auth.NewTokenVerifier("not a pem")
	assert.Error(t, err)
}

func TestTokenVerifier_Success(t *testing.T) {
	key, pub := mustGenerateKey(t)

	v, err := auth.NewTokenVerifier(pub)
	assert.NoError(t, err)

	raw := mustSignRS256(t, key, jwt.MapClaims{
		"sub": "user-1",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	sub, err := v.Verify(raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

// 署名鍵違い => エラー
func TestTokenVerifier_WrongKey(t *testing.T) {
	otherKey, _ := mustGenerateKey(t)
	_, pub := mustGenerateKey(t)

	v, err := auth.NewTokenVerifier(pub)
	assert.NoError(t, err)

	raw := mustSignRS256(t, otherKey, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = v.Verify(raw)
	assert.Error(t, err)
}

// アルゴリズム違い（HS256）=> エラー
func TestTokenVerifier_WrongAlg(t *testing.T) {
	_, pub := mustGenerateKey(t)

	v, err := auth.NewTokenVerifier(pub)
	assert.NoError(t, err)

	hsToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := hsToken.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = v.Verify(raw)
	assert.Error(t, err)
}

// 期限切れ => エラー
func TestTokenVerifier_Expired(t *testing.T) {
	key, pub := mustGenerateKey(t)

	v, err := auth.NewTokenVerifier(pub)
	assert.NoError(t, err)

	raw := mustSignRS256(t, key, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = v.Verify(raw)
	assert.Error(t, err)
}

// sub無し => エラー
func TestTokenVerifier_MissingSub(t *testing.T) {
	key, pub := mustGenerateKey(t)

	v, err := auth.NewTokenVerifier(pub)
	assert.NoError(t, err)

	raw := mustSignRS256(t, key, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = v.Verify(raw)
	assert.Error(t, err)
}
