package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()

	user := &domain.User{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		UserType:  domain.UserTypeSender,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repos.User.Create(ctx, user))

	byID, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := repos.User.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	// Email lookup is an exact match
	_, err = repos.User.GetByEmail(ctx, "ALICE@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repos.User.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	count, err := repos.User.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_UpdateReplacesRecord(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Name: "Before", Email: "u@example.com"}
	require.NoError(t, repos.User.Create(ctx, user))

	user.Name = "After"
	require.NoError(t, repos.User.Update(ctx, user))

	got, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)

	missing := &domain.User{ID: uuid.New()}
	assert.ErrorIs(t, repos.User.Update(ctx, missing), domain.ErrNotFound)
}

func TestReadsReturnCopies(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Name: "Original", Email: "copy@example.com"}
	require.NoError(t, repos.User.Create(ctx, user))

	got, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}

func TestPackageRepository_InsertionOrder(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		pkg := &domain.Package{
			ID:     uuid.New(),
			UserID: userID,
			Name:   fmt.Sprintf("pkg-%d", i),
		}
		require.NoError(t, repos.Package.Create(ctx, pkg))
	}

	packages, err := repos.Package.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, packages, 5)
	for i, pkg := range packages {
		assert.Equal(t, fmt.Sprintf("pkg-%d", i), pkg.Name)
	}
}

func TestPackageRepository_DeleteIdempotent(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()

	pkg := &domain.Package{ID: uuid.New(), UserID: uuid.New(), Name: "to delete"}
	require.NoError(t, repos.Package.Create(ctx, pkg))

	require.NoError(t, repos.Package.Delete(ctx, pkg.ID))
	require.NoError(t, repos.Package.Delete(ctx, pkg.ID))
	require.NoError(t, repos.Package.Delete(ctx, uuid.New()))

	_, err := repos.Package.GetByID(ctx, pkg.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepository_OwnerScoping(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()

	ownerID := uuid.New()
	owned := &domain.Trip{ID: uuid.New(), UserID: &ownerID, OriginCity: "Paris"}
	guest := &domain.Trip{ID: uuid.New(), UserID: nil, OriginCity: "Oslo"}
	require.NoError(t, repos.Trip.Create(ctx, owned))
	require.NoError(t, repos.Trip.Create(ctx, guest))

	all, err := repos.Trip.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Guest trips never match a user scan
	byUser, err := repos.Trip.GetByUserID(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, owned.ID, byUser[0].ID)
}

func TestSessionRepository_DeleteByUserID(t *testing.T) {
	repos := memory.NewRepositories()
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repos.Session.Create(ctx, &domain.UserSession{
		ID:     uuid.New(),
		UserID: userID,
	}))
	require.NoError(t, repos.Session.Create(ctx, &domain.UserSession{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}))

	require.NoError(t, repos.Session.DeleteByUserID(ctx, userID))

	_, err := repos.Session.GetByUserID(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is a no-op
	require.NoError(t, repos.Session.DeleteByUserID(ctx, userID))
}
