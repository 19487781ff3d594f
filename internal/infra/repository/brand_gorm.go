package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	db *gorm.DB
}

// DI
func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

// ブランド全件を商品件数付きで返す。
// 件数はLEFT JOINで都度集計（削除済み商品は数えない）。
func (r *BrandGormRepository) ListWithProductCounts(ctx context.Context) ([]repo.BrandWithCount, error) {
	var rows []repo.BrandWithCount

	err := r.db.WithContext(ctx).
		Model(&model.Brand{}).
		Select("brands.id AS id, brands.name AS name, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.brand_id = brands.id AND products.deleted_at IS NULL").
		Group("brands.id").
		Group("brands.name").
		Order("brands.name asc").
		Order("brands.id asc").
		Scan(&rows).Error

	if err != nil {
		return []repo.BrandWithCount{}, err
	}

	return rows, nil
}

// IDでブランドを1件、商品件数付きで取得。
func (r *BrandGormRepository) FindByID(ctx context.Context, id int64) (repo.BrandWithCount, error) {
	var row repo.BrandWithCount

	res := r.db.WithContext(ctx).
		Model(&model.Brand{}).
		Select("brands.id AS id, brands.name AS name, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.brand_id = brands.id AND products.deleted_at IS NULL").
		Where("brands.id = ?", id).
		Group("brands.id").
		Group("brands.name").
		Scan(&row)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return repo.BrandWithCount{}, repo.ErrNotFound
		}
		return repo.BrandWithCount{}, res.Error
	}
	// Scanは0件でもエラーにならない
	if res.RowsAffected == 0 {
		return repo.BrandWithCount{}, repo.ErrNotFound
	}

	return row, nil
}
