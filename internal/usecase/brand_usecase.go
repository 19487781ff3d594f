package usecase

import (
	"context"
	"net/http"
	"sort"

	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// BrandUsecase は /brand-list の業務ロジック。公開読み取りで認可不要。
type BrandUsecase struct {
	brandRepo repo.BrandRepository
	log       *logger.Logger
}

func NewBrandUsecase(brandRepo repo.BrandRepository, log *logger.Logger) *BrandUsecase {
	return &BrandUsecase{
		brandRepo: brandRepo,
		log:       log,
	}
}

type BrandItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"productCount"`
}

type BrandListOutput struct {
	Brands []BrandItem `json:"brands"`
}

// ListBrandsWithCounts はブランドを名前昇順（同名はID昇順）で返す。
// 並び順はDBの照合順序に任せず、ここでバイト順に確定させる。
func (u *BrandUsecase) ListBrandsWithCounts(ctx context.Context) (BrandListOutput, error) {
	rows, err := u.brandRepo.ListWithProductCounts(ctx)
	if err != nil {
		u.log.Error("brand list query failed", "error", err)
		return BrandListOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})

	items := make([]BrandItem, 0, len(rows))
	for _, b := range rows {
		items = append(items, BrandItem{
			ID:           b.ID,
			Name:         b.Name,
			ProductCount: b.ProductCount,
		})
	}

	return BrandListOutput{Brands: items}, nil
}
