package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/config"
	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/google/uuid"
)

type TripService struct {
	tripRepo repository.TripRepository
	cfg      *config.Config
}

func NewTripService(tripRepo repository.TripRepository, cfg *config.Config) *TripService {
	return &TripService{tripRepo: tripRepo, cfg: cfg}
}

type CreateTripInput struct {
	OriginCity         string
	OriginCountry      string
	DestinationCity    string
	DestinationCountry string
	DepartureDate      string
	ArrivalDate        string
	Stops              []domain.TripStop
	SpaceValue         int // 0-5 slider
	WeightKg           float64
	Transportation     string
	MinPrice           string
	MaxPrice           string
	IsRoundTrip        bool
	Notes              string
}

// Create lists a trip. Creation requires an authenticated actor unless guest
// trip listings are enabled, in which case the trip is stored without an
// owner. Stop entries are kept as supplied, in order, without per-field
// validation.
func (s *TripService) Create(ctx context.Context, actorID uuid.UUID, input CreateTripInput) (*domain.Trip, error) {
	if actorID == uuid.Nil && !s.cfg.GuestTripListings {
		return nil, domain.ErrNotAuthenticated
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"originCity", input.OriginCity},
		{"originCountry", input.OriginCountry},
		{"destinationCity", input.DestinationCity},
		{"destinationCountry", input.DestinationCountry},
		{"departureDate", input.DepartureDate},
		{"arrivalDate", input.ArrivalDate},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}

	transportation := input.Transportation
	if transportation == "" {
		transportation = "other"
	}
	minPrice := input.MinPrice
	if minPrice == "" {
		minPrice = "0"
	}
	maxPrice := input.MaxPrice
	if maxPrice == "" {
		maxPrice = "0"
	}

	trip := &domain.Trip{
		ID:                 uuid.New(),
		OriginCity:         input.OriginCity,
		OriginCountry:      input.OriginCountry,
		DestinationCity:    input.DestinationCity,
		DestinationCountry: input.DestinationCountry,
		DepartureDate:      input.DepartureDate,
		ArrivalDate:        input.ArrivalDate,
		Stops:              input.Stops,
		AvailableSpace:     domain.SizeLabel(input.SpaceValue),
		AvailableWeight:    domain.FormatWeight(input.WeightKg),
		Transportation:     transportation,
		MinPrice:           minPrice,
		MaxPrice:           maxPrice,
		IsRoundTrip:        input.IsRoundTrip,
		Notes:              input.Notes,
		Status:             domain.TripStatusActive,
		CreatedAt:          time.Now(),
	}
	if actorID != uuid.Nil {
		trip.UserID = &actorID
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// List returns every trip in storage order for marketplace browsing.
func (s *TripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

// ListOwned returns the actor's trips in storage order.
func (s *TripService) ListOwned(ctx context.Context, actorID uuid.UUID) ([]*domain.Trip, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.tripRepo.GetByUserID(ctx, actorID)
}

// UpdateStatus sets a trip's status. Any valid status is accepted from any
// current status.
func (s *TripService) UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, status domain.TripStatus) (*domain.Trip, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !domain.ValidTripStatus(status) {
		return nil, domain.NewValidationError("invalid trip status: " + string(status))
	}

	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.UserID != nil && *trip.UserID != actorID {
		return nil, domain.ErrNotOwner
	}

	trip.Status = status
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes one trip by id. Deleting an absent id is not an error.
func (s *TripService) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.ErrNotAuthenticated
	}

	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if trip.UserID != nil && *trip.UserID != actorID {
		return domain.ErrNotOwner
	}

	return s.tripRepo.Delete(ctx, id)
}
