package service_test

import (
	"context"
	"testing"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/service"
	"github.com/crowdship-app/crowdship-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTripInput() service.CreateTripInput {
	return service.CreateTripInput{
		OriginCity:         "New York",
		OriginCountry:      "United States",
		DestinationCity:    "London",
		DestinationCountry: "United Kingdom",
		DepartureDate:      "2025-09-10",
		ArrivalDate:        "2025-09-12",
		SpaceValue:         2,
		WeightKg:           3,
	}
}

func TestTripService_Create(t *testing.T) {
	repos := testutil.NewMemoryRepos()
	tripService := service.NewTripService(repos.Trip, testutil.TestConfig())
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, repos)

	input := validTripInput()
	input.Stops = []domain.TripStop{
		{City: "Reykjavik", Country: "Iceland", Date: "2025-09-11"},
		{City: "", Country: "", Date: ""}, // empty stop entries are permitted
	}

	trip, err := tripService.Create(ctx, owner.ID, input)
	require.NoError(t, err)

	require.NotNil(t, trip.UserID)
	assert.Equal(t, owner.ID, *trip.UserID)
	assert.Equal(t, domain.TripStatusActive, trip.Status)
	assert.Equal(t, domain.SizeMedium, trip.AvailableSpace)
	assert.Equal(t, "3.0", trip.AvailableWeight)

	// Stop order is preserved
	require.Len(t, trip.Stops, 2)
	assert.Equal(t, "Reykjavik", trip.Stops[0].City)

	// Defaults for omitted optional fields
	assert.Equal(t, "other", trip.Transportation)
	assert.Equal(t, "0", trip.MinPrice)
	assert.Equal(t, "0", trip.MaxPrice)
	assert.Equal(t, "", trip.Notes)
}

func TestTripService_Create_Validation(t *testing.T) {
	repos := testutil.NewMemoryRepos()
	tripService := service.NewTripService(repos.Trip, testutil.TestConfig())
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, repos)

	input := validTripInput()
	input.OriginCity = ""
	input.ArrivalDate = ""

	_, err := tripService.Create(ctx, owner.ID, input)
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "originCity")
	assert.Contains(t, validationErr.Reason, "arrivalDate")
	assert.NotContains(t, validationErr.Reason, "destinationCity")
}

func TestTripService_Create_GuestPolicy(t *testing.T) {
	tests := []struct {
		name              string
		guestTripListings bool
		wantErr           error
	}{
		{
			name:              "gated by default",
			guestTripListings: false,
			wantErr:           domain.ErrNotAuthenticated,
		},
		{
			name:              "guest listings enabled",
			guestTripListings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := testutil.NewMemoryRepos()
			cfg := testutil.TestConfig()
			cfg.GuestTripListings = tt.guestTripListings
			tripService := service.NewTripService(repos.Trip, cfg)

			trip, err := tripService.Create(context.Background(), uuid.Nil, validTripInput())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Nil(t, trip.UserID)
		})
	}
}

func TestTripService_UpdateStatus(t *testing.T) {
	repos := testutil.NewMemoryRepos()
	tripService := service.NewTripService(repos.Trip, testutil.TestConfig())
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, repos)
	other, _ := testutil.NewUserBuilder().Build(t, repos)
	trip := testutil.NewTripBuilder().WithOwner(owner).Build(t, repos)

	// Any status is reachable from any status
	for _, status := range []domain.TripStatus{
		domain.TripStatusCompleted,
		domain.TripStatusActive,
		domain.TripStatusCancelled,
		domain.TripStatusCompleted,
	} {
		updated, err := tripService.UpdateStatus(ctx, owner.ID, trip.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	_, err := tripService.UpdateStatus(ctx, owner.ID, trip.ID, domain.TripStatus("archived"))
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = tripService.UpdateStatus(ctx, other.ID, trip.ID, domain.TripStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = tripService.UpdateStatus(ctx, owner.ID, uuid.New(), domain.TripStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_ListScoping(t *testing.T) {
	repos := testutil.NewMemoryRepos()
	tripService := service.NewTripService(repos.Trip, testutil.TestConfig())
	ctx := context.Background()

	userA, _ := testutil.NewUserBuilder().Build(t, repos)
	userB, _ := testutil.NewUserBuilder().Build(t, repos)
	tripA := testutil.NewTripBuilder().WithOwner(userA).Build(t, repos)
	tripB := testutil.NewTripBuilder().WithOwner(userB).Build(t, repos)

	all, err := tripService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ownedByA, err := tripService.ListOwned(ctx, userA.ID)
	require.NoError(t, err)
	require.Len(t, ownedByA, 1)
	assert.Equal(t, tripA.ID, ownedByA[0].ID)

	ownedByB, err := tripService.ListOwned(ctx, userB.ID)
	require.NoError(t, err)
	require.Len(t, ownedByB, 1)
	assert.Equal(t, tripB.ID, ownedByB[0].ID)
}

func TestTripService_Delete(t *testing.T) {
	repos := testutil.NewMemoryRepos()
	tripService := service.NewTripService(repos.Trip, testutil.TestConfig())
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, repos)
	trip := testutil.NewTripBuilder().WithOwner(owner).Build(t, repos)

	require.NoError(t, tripService.Delete(ctx, owner.ID, trip.ID))

	all, err := tripService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Idempotent on absent ids
	require.NoError(t, tripService.Delete(ctx, owner.ID, trip.ID))
}
