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

type PackageHandler struct {
	packageService *service.PackageService
}

func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

type CreatePackageRequest struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Size                int     `json:"size"` // 0-5 slider value
	Weight              float64 `json:"weight"`
	Origin              string  `json:"origin"`
	Destination         string  `json:"destination"`
	DeliveryDate        string  `json:"deliveryDate"`
	Budget              string  `json:"budget"`
	Category            string  `json:"category"`
	SpecialInstructions string  `json:"specialInstructions"`
}

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	var req CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pkg, err := h.packageService.Create(r.Context(), actorID, service.CreatePackageInput{
		Name:                req.Name,
		Description:         req.Description,
		SizeValue:           req.Size,
		WeightKg:            req.Weight,
		Origin:              req.Origin,
		Destination:         req.Destination,
		DeliveryDate:        req.DeliveryDate,
		Budget:              req.Budget,
		Category:            req.Category,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"package": pkg})
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	packages, err := h.packageService.ListOwned(r.Context(), actorID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if packages == nil {
		packages = []*domain.Package{}
	}

	respondSuccess(w, http.StatusOK, map[string]any{"packages": packages})
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid package id")
		return
	}

	if err := h.packageService.Delete(r.Context(), actorID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}
