package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// CartUsecase は /cart-count の業務ロジック。
// 返すのは合計数量だけで、明細は境界を越えない。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	log          *logger.Logger
}

func NewCartUsecase(cartItemRepo repo.CartItemRepository, log *logger.Logger) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		log:          log,
	}
}

// GetCartItemTotal はユーザーのカート数量合計を返す。
// 行が無い場合は0（エラーにしない）。DB障害だけがエラー。
func (u *CartUsecase) GetCartItemTotal(ctx context.Context, identity model.Identity) (int64, error) {
	if identity.ID == "" {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	total, err := u.cartItemRepo.SumQuantityByUserID(ctx, identity.ID)
	if err != nil {
		u.log.Error("cart count query failed", "error", err, "user_id", identity.ID)
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return total, nil
}
