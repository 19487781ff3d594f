package repository_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	infraRepo "storefront/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// 行が無ければ0（NULLを返さない）
func TestCartItemGormRepository_SumQuantityByUserID_Empty(t *testing.T) {
	db := newTestDB(t)

	r := infraRepo.NewCartItemGormRepository(db)

	total, err := r.SumQuantityByUserID(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

// 自分の行だけを合計する
func TestCartItemGormRepository_SumQuantityByUserID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userID := uuid.NewString()
	otherID := uuid.NewString()

	mustCreate(t, db, &model.CartItem{UserID: userID, ProductID: 1, Quantity: 2})
	mustCreate(t, db, &model.CartItem{UserID: userID, ProductID: 2, Quantity: 3})
	mustCreate(t, db, &model.CartItem{UserID: otherID, ProductID: 1, Quantity: 10})

	r := infraRepo.NewCartItemGormRepository(db)

	total, err := r.SumQuantityByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
}
