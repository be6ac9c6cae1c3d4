package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crowdship-app/crowdship-api/internal/api/middleware"
	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentMethodRequest carries the raw card details. They are consumed
// by validation and masking only and never stored or echoed back.
type CreatePaymentMethodRequest struct {
	CardType       string `json:"cardType"`
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVV            string `json:"cvv"`
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	var req CreatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method, err := h.paymentService.Create(r.Context(), actorID, service.CreatePaymentMethodInput{
		CardType:       domain.CardType(req.CardType),
		CardNumber:     req.CardNumber,
		CardholderName: req.CardholderName,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		CVV:            req.CVV,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"paymentMethod": method})
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	methods, err := h.paymentService.ListOwned(r.Context(), actorID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if methods == nil {
		methods = []*domain.PaymentMethod{}
	}

	respondSuccess(w, http.StatusOK, map[string]any{"paymentMethods": methods})
}
