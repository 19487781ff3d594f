package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/auth"
	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// =====================
// 共通スタブ・Mock（handler専用：名前衝突回避）
// =====================

type handlerStubResolver struct {
	identity *model.Identity
	err      error
}

func (s *handlerStubResolver) Resolve(ctx context.Context, rawToken string) (*model.Identity, error) {
	return s.identity, s.err
}

type HandlerBrandRepoMock struct{ mock.Mock }

func (m *HandlerBrandRepoMock) ListWithProductCounts(ctx context.Context) ([]repo.BrandWithCount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.BrandWithCount)
	return rows, args.Error(1)
}

func (m *HandlerBrandRepoMock) FindByID(ctx context.Context, id int64) (repo.BrandWithCount, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(repo.BrandWithCount)
	return row, args.Error(1)
}

type HandlerCartRepoMock struct{ mock.Mock }

func (m *HandlerCartRepoMock) SumQuantityByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// helper
// =====================

func runRequest(t *testing.T, e *echo.Echo, method string, path string, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func aliceIdentity() *model.Identity {
	return &model.Identity{ID: "user-1", FirstName: "Alice", Status: model.StatusActive}
}
