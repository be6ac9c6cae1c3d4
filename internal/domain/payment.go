package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeAmex       CardType = "amex"
	CardTypeDiscover   CardType = "discover"
)

// PaymentMethod stores only the masked form of a card. The raw card number
// and CVV never leave the create path.
type PaymentMethod struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	CardType         CardType  `json:"cardType" gorm:"not null"`
	CardholderName   string    `json:"cardholderName" gorm:"not null"`
	MaskedCardNumber string    `json:"maskedCardNumber" gorm:"not null"`
	LastFourDigits   string    `json:"lastFourDigits" gorm:"not null"`
	ExpiryMonth      string    `json:"expiryMonth"`
	ExpiryYear       string    `json:"expiryYear"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CardDigits strips spaces and dashes from a raw card number.
func CardDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, raw)
}

// MaskCardNumber returns the masked card number and the last four digits.
// All but the last four digits are replaced with asterisks and the result is
// grouped in blocks of four, e.g. "**** **** **** 4242".
func MaskCardNumber(raw string) (masked, lastFour string) {
	digits := CardDigits(raw)
	if len(digits) <= 4 {
		return digits, digits
	}
	lastFour = digits[len(digits)-4:]

	flat := strings.Repeat("*", len(digits)-4) + lastFour
	var b strings.Builder
	for i, r := range flat {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String(), lastFour
}
