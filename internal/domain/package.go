package domain

import (
	"time"

	"github.com/google/uuid"
)

type PackageStatus string

const (
	PackageStatusPending   PackageStatus = "pending"
	PackageStatusAccepted  PackageStatus = "accepted"
	PackageStatusInTransit PackageStatus = "in-transit"
	PackageStatusDelivered PackageStatus = "delivered"
	PackageStatusCancelled PackageStatus = "cancelled"
)

type Package struct {
	ID                  uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID              uuid.UUID     `json:"userId" gorm:"type:uuid;not null;index"`
	Name                string        `json:"name" gorm:"not null"`
	Description         string        `json:"description"`
	Size                string        `json:"size" gorm:"not null"`
	Weight              string        `json:"weight"`
	Origin              string        `json:"origin"`
	Destination         string        `json:"destination"`
	DeliveryDate        string        `json:"deliveryDate"`
	Budget              string        `json:"budget"`
	Category            string        `json:"category"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
	Status              PackageStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt           time.Time     `json:"createdAt"`
}
