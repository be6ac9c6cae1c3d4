package service

import (
	"github.com/crowdship-app/crowdship-api/internal/config"
	"github.com/crowdship-app/crowdship-api/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Package *PackageService
	Trip    *TripService
	Payment *PaymentService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session, cfg),
		Package: NewPackageService(repos.Package),
		Trip:    NewTripService(repos.Trip, cfg),
		Payment: NewPaymentService(repos.PaymentMethod),
	}
}
