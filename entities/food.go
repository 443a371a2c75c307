package entities

const (
	FoodStatusAvailable = "Available"
	FoodStatusDonated   = "Donated"
)

// Donator is the identity that created a listing. Email is the
// authorization key for every mutation of the listing.
type Donator struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}

// Food is a listed surplus food item offered for donation.
// Timestamps are stored as RFC3339 strings so the wire format matches the
// public API (createdAt always present, updatedAt absent until the first
// mutation) and lexicographic ordering in the store stays chronological.
type Food struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	Name           string  `json:"name"`
	Image          string  `json:"image,omitempty"`
	QuantityText   string  `json:"quantityText"`
	QuantityNumber int     `json:"quantityNumber"`
	PickupLocation string  `json:"pickupLocation"`
	ExpireDate     string  `json:"expireDate,omitempty"`
	Notes          string  `json:"notes"`
	Donator        Donator `gorm:"embedded;embeddedPrefix:donator_" json:"donator"`
	Status         string  `gorm:"index" json:"status"` // "Available", "Donated"
	CreatedAt      string  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt      string  `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
