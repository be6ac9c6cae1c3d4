package postgres

import (
	"context"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *packageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	return translate(r.db.WithContext(ctx).Create(pkg).Error)
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	var pkg domain.Package
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *packageRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Package, error) {
	var packages []*domain.Package
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&packages).Error
	if err != nil {
		return nil, translate(err)
	}
	return packages, nil
}

// Delete is a no-op when the id is absent.
func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Package{}, "id = ?", id).Error)
}
