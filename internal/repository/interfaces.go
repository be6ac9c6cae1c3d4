package repository

import (
	"context"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	GetAll(ctx context.Context) ([]*domain.Trip, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *domain.PaymentMethod) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.PaymentMethod, error)
}

type Repositories struct {
	User          UserRepository
	Session       SessionRepository
	Package       PackageRepository
	Trip          TripRepository
	PaymentMethod PaymentMethodRepository
}
