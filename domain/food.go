package domain

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	MessageMissingFoodName    = "Missing food name"
	MessageFoodNotFound       = "Food not found"
	MessageMissingImage       = "Missing image file"
	MessageInvalidImageFormat = "Invalid image format"

	MessageFailedFetchFoods  = "Failed to fetch foods"
	MessageFailedFetchFood   = "Failed to fetch food"
	MessageFailedCreateFood  = "Failed to create food"
	MessageFailedUpdateFood  = "Failed to update food"
	MessageFailedDeleteFood  = "Failed to delete food"
	MessageFailedFetchMine   = "Failed to fetch my foods"
	MessageFailedUploadImage = "Failed to upload food image"

	ErrFoodNotFound       = errors.New("food not found")
	ErrFieldNotAllowed    = errors.New("field not allowed")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	DonatorInput struct {
		UID   string `json:"uid"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Photo string `json:"photo"`
	}

	CreateFoodRequest struct {
		Name           string       `json:"name" validate:"required"`
		Image          string       `json:"image"`
		QuantityText   string       `json:"quantityText"`
		QuantityNumber *int         `json:"quantityNumber"`
		PickupLocation string       `json:"pickupLocation"`
		ExpireDate     string       `json:"expireDate"`
		Notes          string       `json:"notes"`
		Donator        DonatorInput `json:"donator"`
		Status         string       `json:"status"`
	}
)

var quantityDigits = regexp.MustCompile(`\d+`)

// ParseQuantityNumber extracts the first run of digits from a free-form
// quantity string ("3 boxes" -> 3). Returns 0 when no digits are found.
func ParseQuantityNumber(quantityText string) int {
	m := quantityDigits.FindString(quantityText)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
