package postgres

import (
	"context"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *tripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	return translate(r.db.WithContext(ctx).Create(trip).Error)
}

func (r *tripRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	var trip domain.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &trip, nil
}

func (r *tripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	var trips []*domain.Trip
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&trips).Error
	if err != nil {
		return nil, translate(err)
	}
	return trips, nil
}

func (r *tripRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Trip, error) {
	var trips []*domain.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&trips).Error
	if err != nil {
		return nil, translate(err)
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	return translate(r.db.WithContext(ctx).Save(trip).Error)
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Trip{}, "id = ?", id).Error)
}
