package service

import (
	"context"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/google/uuid"
)

type PaymentService struct {
	paymentRepo repository.PaymentMethodRepository
}

func NewPaymentService(paymentRepo repository.PaymentMethodRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

type CreatePaymentMethodInput struct {
	CardType       domain.CardType
	CardNumber     string
	CardholderName string
	ExpiryMonth    string
	ExpiryYear     string
	CVV            string
}

// Create validates and stores a payment method. Checks are fail-fast in form
// order, each with its own message. Only the masked card number is persisted;
// the raw number and CVV are discarded.
func (s *PaymentService) Create(ctx context.Context, actorID uuid.UUID, input CreatePaymentMethodInput) (*domain.PaymentMethod, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}

	if input.CardType == "" {
		return nil, domain.NewValidationError("please select a card type")
	}
	if len(domain.CardDigits(input.CardNumber)) < 16 {
		return nil, domain.NewValidationError("please enter a valid card number")
	}
	if input.CardholderName == "" {
		return nil, domain.NewValidationError("please enter the cardholder name")
	}
	if input.ExpiryMonth == "" || input.ExpiryYear == "" {
		return nil, domain.NewValidationError("please select an expiry date")
	}
	if len(input.CVV) < 3 {
		return nil, domain.NewValidationError("please enter a valid CVV")
	}

	masked, lastFour := domain.MaskCardNumber(input.CardNumber)

	method := &domain.PaymentMethod{
		ID:               uuid.New(),
		UserID:           actorID,
		CardType:         input.CardType,
		CardholderName:   input.CardholderName,
		MaskedCardNumber: masked,
		LastFourDigits:   lastFour,
		ExpiryMonth:      input.ExpiryMonth,
		ExpiryYear:       input.ExpiryYear,
		CreatedAt:        time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// ListOwned returns the actor's payment methods in storage order.
func (s *PaymentService) ListOwned(ctx context.Context, actorID uuid.UUID) ([]*domain.PaymentMethod, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.paymentRepo.GetByUserID(ctx, actorID)
}
