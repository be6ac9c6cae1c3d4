package service

import (
	"context"
	"errors"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/google/uuid"
)

type PackageService struct {
	packageRepo repository.PackageRepository
}

func NewPackageService(packageRepo repository.PackageRepository) *PackageService {
	return &PackageService{packageRepo: packageRepo}
}

type CreatePackageInput struct {
	Name                string
	Description         string
	SizeValue           int // 0-5 slider
	WeightKg            float64
	Origin              string
	Destination         string
	DeliveryDate        string
	Budget              string
	Category            string
	SpecialInstructions string
}

// Create lists a new package for the acting user. The owner is always the
// actor, never caller-supplied; status starts as pending.
func (s *PackageService) Create(ctx context.Context, actorID uuid.UUID, input CreatePackageInput) (*domain.Package, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}

	pkg := &domain.Package{
		ID:                  uuid.New(),
		UserID:              actorID,
		Name:                input.Name,
		Description:         input.Description,
		Size:                domain.SizeLabel(input.SizeValue),
		Weight:              domain.FormatWeight(input.WeightKg),
		Origin:              input.Origin,
		Destination:         input.Destination,
		DeliveryDate:        input.DeliveryDate,
		Budget:              input.Budget,
		Category:            input.Category,
		SpecialInstructions: input.SpecialInstructions,
		Status:              domain.PackageStatusPending,
		CreatedAt:           time.Now(),
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// ListOwned returns the actor's packages in storage order.
func (s *PackageService) ListOwned(ctx context.Context, actorID uuid.UUID) ([]*domain.Package, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.packageRepo.GetByUserID(ctx, actorID)
}

// Delete removes one package by id. Deleting an absent id is not an error.
func (s *PackageService) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.ErrNotAuthenticated
	}

	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if pkg.UserID != actorID {
		return domain.ErrNotOwner
	}

	return s.packageRepo.Delete(ctx, id)
}
