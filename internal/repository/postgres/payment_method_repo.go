package postgres

import (
	"context"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *paymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	return translate(r.db.WithContext(ctx).Create(method).Error)
}

func (r *paymentMethodRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.PaymentMethod, error) {
	var methods []*domain.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&methods).Error
	if err != nil {
		return nil, translate(err)
	}
	return methods, nil
}
