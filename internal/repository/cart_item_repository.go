package repository

import "context"

// カート明細の集計だけを約束。明細そのものは返さない。
type CartItemRepository interface {
	// 行が無ければ0（エラーにしない）
	SumQuantityByUserID(ctx context.Context, userID string) (int64, error)
}
