package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crowdship-app/crowdship-api/internal/api/middleware"
	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TripHandler struct {
	tripService *service.TripService
}

func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

type CreateTripRequest struct {
	OriginCity         string            `json:"originCity"`
	OriginCountry      string            `json:"originCountry"`
	DestinationCity    string            `json:"destinationCity"`
	DestinationCountry string            `json:"destinationCountry"`
	DepartureDate      string            `json:"departureDate"`
	ArrivalDate        string            `json:"arrivalDate"`
	Stops              []domain.TripStop `json:"stops"`
	AvailableSpace     int               `json:"availableSpace"` // 0-5 slider value
	AvailableWeight    float64           `json:"availableWeight"`
	Transportation     string            `json:"transportation"`
	MinPrice           string            `json:"minPrice"`
	MaxPrice           string            `json:"maxPrice"`
	IsRoundTrip        bool              `json:"isRoundTrip"`
	Notes              string            `json:"notes"`
}

type UpdateTripStatusRequest struct {
	Status string `json:"status"`
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trip, err := h.tripService.Create(r.Context(), actorID, service.CreateTripInput{
		OriginCity:         req.OriginCity,
		OriginCountry:      req.OriginCountry,
		DestinationCity:    req.DestinationCity,
		DestinationCountry: req.DestinationCountry,
		DepartureDate:      req.DepartureDate,
		ArrivalDate:        req.ArrivalDate,
		Stops:              req.Stops,
		SpaceValue:         req.AvailableSpace,
		WeightKg:           req.AvailableWeight,
		Transportation:     req.Transportation,
		MinPrice:           req.MinPrice,
		MaxPrice:           req.MaxPrice,
		IsRoundTrip:        req.IsRoundTrip,
		Notes:              req.Notes,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"trip": trip})
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if trips == nil {
		trips = []*domain.Trip{}
	}

	respondSuccess(w, http.StatusOK, map[string]any{"trips": trips})
}

func (h *TripHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	trips, err := h.tripService.ListOwned(r.Context(), actorID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if trips == nil {
		trips = []*domain.Trip{}
	}

	respondSuccess(w, http.StatusOK, map[string]any{"trips": trips})
}

func (h *TripHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req UpdateTripStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trip, err := h.tripService.UpdateStatus(r.Context(), actorID, id, domain.TripStatus(req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"trip": trip})
}

func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	if err := h.tripService.Delete(r.Context(), actorID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}
