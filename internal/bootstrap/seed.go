// Package bootstrap seeds the store with demonstration data on first run.
package bootstrap

import (
	"context"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Demo login credentials for the seeded user.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
)

// Fixed ids keep seeding deterministic across runs.
var (
	demoUserID     = uuid.MustParse("5b1f8c3a-9d42-4e7b-8a16-c2f0d4e6a901")
	demoPackage1ID = uuid.MustParse("7c2e9d4b-1a53-4f8c-9b27-d3a1e5f7b012")
	demoPackage2ID = uuid.MustParse("8d3fae5c-2b64-4a9d-8c38-e4b2f6a8c123")
	demoPaymentID  = uuid.MustParse("9e4abf6d-3c75-4bae-9d49-f5c3a7b9d234")
)

// SeedDemoData populates the store with one demo user, two packages and one
// payment method. It is a no-op when any users already exist, so running it
// on every start is safe. It never creates a session; acting as the demo
// user requires a normal login with the demo credentials.
func SeedDemoData(ctx context.Context, repos *repository.Repositories) error {
	count, err := repos.User.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &domain.User{
		ID:           demoUserID,
		Name:         "John Doe",
		Email:        DemoEmail,
		PasswordHash: string(hashedPassword),
		Phone:        "+1 (555) 123-4567",
		Location:     "New York, USA",
		UserType:     domain.UserTypeSender,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.User.Create(ctx, user); err != nil {
		return err
	}

	packages := []*domain.Package{
		{
			ID:           demoPackage1ID,
			UserID:       demoUserID,
			Name:         "Small Electronics Package",
			Description:  "A small package containing electronics",
			Size:         domain.SizeSmall,
			Weight:       "1.5",
			Origin:       "New York",
			Destination:  "London",
			DeliveryDate: "2023-06-15",
			Budget:       "50",
			Category:     "electronics",
			Status:       domain.PackageStatusInTransit,
			CreatedAt:    now,
		},
		{
			ID:           demoPackage2ID,
			UserID:       demoUserID,
			Name:         "Documents Envelope",
			Description:  "Important documents that need to be delivered",
			Size:         domain.SizeSmall,
			Weight:       "0.5",
			Origin:       "London",
			Destination:  "Paris",
			DeliveryDate: "2023-05-22",
			Budget:       "30",
			Category:     "documents",
			Status:       domain.PackageStatusInTransit,
			CreatedAt:    now,
		},
	}
	for _, pkg := range packages {
		if err := repos.Package.Create(ctx, pkg); err != nil {
			return err
		}
	}

	method := &domain.PaymentMethod{
		ID:               demoPaymentID,
		UserID:           demoUserID,
		CardType:         domain.CardTypeVisa,
		CardholderName:   "John Doe",
		MaskedCardNumber: "**** **** **** 4242",
		LastFourDigits:   "4242",
		ExpiryMonth:      "05",
		ExpiryYear:       "25",
		CreatedAt:        now,
	}
	return repos.PaymentMethod.Create(ctx, method)
}
