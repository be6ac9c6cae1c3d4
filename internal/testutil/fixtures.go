package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
	userType domain.UserType
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("Test User %s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		userType: domain.UserTypeSender,
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithUserType sets the user type
func (b *UserBuilder) WithUserType(userType domain.UserType) *UserBuilder {
	b.userType = userType
	return b
}

// Build creates the user in the store and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, repos *repository.Repositories) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Phone:        "+1 (555) 000-0000",
		Location:     "Testville",
		UserType:     b.userType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repos.User.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth envelope
type AuthResponse struct {
	Success      bool        `json:"success"`
	User         domain.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	Error        string      `json:"error"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
		"userType": string(b.userType),
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	user := authResp.User
	return &user, authResp.AccessToken
}

// PackageBuilder creates test packages
type PackageBuilder struct {
	owner       *domain.User
	name        string
	size        string
	weight      string
	origin      string
	destination string
}

// NewPackageBuilder creates a new PackageBuilder with default values
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		name:        fmt.Sprintf("Test Package %s", uuid.New().String()[:8]),
		size:        domain.SizeMedium,
		weight:      "2.0",
		origin:      "New York",
		destination: "London",
	}
}

// WithOwner sets the package owner
func (b *PackageBuilder) WithOwner(user *domain.User) *PackageBuilder {
	b.owner = user
	return b
}

// WithName sets the package name
func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.name = name
	return b
}

// Build creates the package in the store
func (b *PackageBuilder) Build(t *testing.T, repos *repository.Repositories) *domain.Package {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, repos)
		b.owner = user
	}

	pkg := &domain.Package{
		ID:           uuid.New(),
		UserID:       b.owner.ID,
		Name:         b.name,
		Description:  "A test package",
		Size:         b.size,
		Weight:       b.weight,
		Origin:       b.origin,
		Destination:  b.destination,
		DeliveryDate: "2025-10-01",
		Budget:       "40",
		Category:     "other",
		Status:       domain.PackageStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := repos.Package.Create(context.Background(), pkg); err != nil {
		t.Fatalf("failed to create package: %v", err)
	}

	return pkg
}

// TripBuilder creates test trips
type TripBuilder struct {
	owner *domain.User
	stops []domain.TripStop
}

// NewTripBuilder creates a new TripBuilder with default values
func NewTripBuilder() *TripBuilder {
	return &TripBuilder{}
}

// WithOwner sets the trip owner
func (b *TripBuilder) WithOwner(user *domain.User) *TripBuilder {
	b.owner = user
	return b
}

// WithStops sets the intermediate stops
func (b *TripBuilder) WithStops(stops []domain.TripStop) *TripBuilder {
	b.stops = stops
	return b
}

// Build creates the trip in the store
func (b *TripBuilder) Build(t *testing.T, repos *repository.Repositories) *domain.Trip {
	t.Helper()

	trip := &domain.Trip{
		ID:                 uuid.New(),
		OriginCity:         "New York",
		OriginCountry:      "United States",
		DestinationCity:    "London",
		DestinationCountry: "United Kingdom",
		DepartureDate:      "2025-09-10",
		ArrivalDate:        "2025-09-12",
		Stops:              b.stops,
		AvailableSpace:     domain.SizeMedium,
		AvailableWeight:    "3.0",
		Transportation:     "plane",
		MinPrice:           "10",
		MaxPrice:           "30",
		Status:             domain.TripStatusActive,
		CreatedAt:          time.Now(),
	}
	if b.owner != nil {
		trip.UserID = &b.owner.ID
	}

	if err := repos.Trip.Create(context.Background(), trip); err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	return trip
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
