package domain

import "strconv"

const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// SizeLabel maps a 0-5 capacity slider value to its label:
// <=1 Small, <=3 Medium, otherwise Large.
func SizeLabel(value int) string {
	if value <= 1 {
		return SizeSmall
	}
	if value <= 3 {
		return SizeMedium
	}
	return SizeLarge
}

// FormatWeight renders a weight in kilograms with one decimal place,
// matching the slider display ("1.5", "0.5").
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 1, 64)
}
