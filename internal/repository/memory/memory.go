// Package memory is an in-memory storage medium implementing the repository
// interfaces. It backs the single-user demo mode and the test suite; records
// are kept in insertion order so list reads return storage order.
package memory

import (
	"context"
	"sync"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/google/uuid"
)

type store struct {
	mu       sync.RWMutex
	users    []domain.User
	sessions []domain.UserSession
	packages []domain.Package
	trips    []domain.Trip
	methods  []domain.PaymentMethod
}

// NewRepositories returns a repository set sharing one in-memory store.
func NewRepositories() *repository.Repositories {
	s := &store{}
	return &repository.Repositories{
		User:          &userRepository{s},
		Session:       &sessionRepository{s},
		Package:       &packageRepository{s},
		Trip:          &tripRepository{s},
		PaymentMethod: &paymentMethodRepository{s},
	}
}

type userRepository struct {
	s *store
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			user := r.s.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			user := r.s.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == user.ID {
			r.s.users[i] = *user
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *userRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

type sessionRepository struct {
	s *store
}

func (r *sessionRepository) Create(_ context.Context, session *domain.UserSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions = append(r.s.sessions, *session)
	return nil
}

func (r *sessionRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.UserSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.sessions {
		if r.s.sessions[i].UserID == userID {
			session := r.s.sessions[i]
			return &session, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *sessionRepository) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.sessions[:0]
	for _, session := range r.s.sessions {
		if session.UserID != userID {
			kept = append(kept, session)
		}
	}
	r.s.sessions = kept
	return nil
}

type packageRepository struct {
	s *store
}

func (r *packageRepository) Create(_ context.Context, pkg *domain.Package) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.packages = append(r.s.packages, *pkg)
	return nil
}

func (r *packageRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Package, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.packages {
		if r.s.packages[i].ID == id {
			pkg := r.s.packages[i]
			return &pkg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *packageRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Package, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var packages []*domain.Package
	for i := range r.s.packages {
		if r.s.packages[i].UserID == userID {
			pkg := r.s.packages[i]
			packages = append(packages, &pkg)
		}
	}
	return packages, nil
}

func (r *packageRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.packages[:0]
	for _, pkg := range r.s.packages {
		if pkg.ID != id {
			kept = append(kept, pkg)
		}
	}
	r.s.packages = kept
	return nil
}

type tripRepository struct {
	s *store
}

func (r *tripRepository) Create(_ context.Context, trip *domain.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.trips = append(r.s.trips, *trip)
	return nil
}

func (r *tripRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.trips {
		if r.s.trips[i].ID == id {
			trip := r.s.trips[i]
			return &trip, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *tripRepository) GetAll(_ context.Context) ([]*domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	trips := make([]*domain.Trip, 0, len(r.s.trips))
	for i := range r.s.trips {
		trip := r.s.trips[i]
		trips = append(trips, &trip)
	}
	return trips, nil
}

func (r *tripRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var trips []*domain.Trip
	for i := range r.s.trips {
		if r.s.trips[i].UserID != nil && *r.s.trips[i].UserID == userID {
			trip := r.s.trips[i]
			trips = append(trips, &trip)
		}
	}
	return trips, nil
}

func (r *tripRepository) Update(_ context.Context, trip *domain.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.trips {
		if r.s.trips[i].ID == trip.ID {
			r.s.trips[i] = *trip
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *tripRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.trips[:0]
	for _, trip := range r.s.trips {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	r.s.trips = kept
	return nil
}

type paymentMethodRepository struct {
	s *store
}

func (r *paymentMethodRepository) Create(_ context.Context, method *domain.PaymentMethod) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.methods = append(r.s.methods, *method)
	return nil
}

func (r *paymentMethodRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]*domain.PaymentMethod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var methods []*domain.PaymentMethod
	for i := range r.s.methods {
		if r.s.methods[i].UserID == userID {
			method := r.s.methods[i]
			methods = append(methods, &method)
		}
	}
	return methods, nil
}
