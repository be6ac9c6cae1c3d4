package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// TripStop is an intermediate stop on a trip. Order is significant and
// preserved as stored.
type TripStop struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Date    string `json:"date"`
}

type Trip struct {
	ID                 uuid.UUID                     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             *uuid.UUID                    `json:"userId" gorm:"type:uuid;index"`
	OriginCity         string                        `json:"originCity" gorm:"not null"`
	OriginCountry      string                        `json:"originCountry" gorm:"not null"`
	DestinationCity    string                        `json:"destinationCity" gorm:"not null"`
	DestinationCountry string                        `json:"destinationCountry" gorm:"not null"`
	DepartureDate      string                        `json:"departureDate" gorm:"not null"`
	ArrivalDate        string                        `json:"arrivalDate" gorm:"not null"`
	Stops              datatypes.JSONSlice[TripStop] `json:"stops" gorm:"type:jsonb"`
	AvailableSpace     string                        `json:"availableSpace"`
	AvailableWeight    string                        `json:"availableWeight"`
	Transportation     string                        `json:"transportation"`
	MinPrice           string                        `json:"minPrice"`
	MaxPrice           string                        `json:"maxPrice"`
	IsRoundTrip        bool                          `json:"isRoundTrip"`
	Notes              string                        `json:"notes"`
	Status             TripStatus                    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt          time.Time                     `json:"createdAt"`
}

// ValidTripStatus reports whether s is one of the accepted trip statuses.
// Any valid status is reachable from any other; there is no transition table.
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}
