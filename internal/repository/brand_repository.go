package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// ブランド1件＋関連商品の件数（集計値。保存しない）。
type BrandWithCount struct {
	ID           int64
	Name         string
	ProductCount int64
}

// ブランドの読み取りだけを約束。書き込みはこのシステムの責任外。
type BrandRepository interface {
	// 削除済み商品を除いた件数付きで全件返す
	ListWithProductCounts(ctx context.Context) ([]BrandWithCount, error)
	FindByID(ctx context.Context, id int64) (BrandWithCount, error)
}
