package entities

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// Requester mirrors Donator for the claiming side.
type Requester struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// FoodRequest is a requester's claim against a listing. It is only ever
// deleted as a cascade of its listing's deletion.
type FoodRequest struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FoodID    string    `gorm:"index" json:"foodId"`
	Requester Requester `gorm:"embedded;embeddedPrefix:requester_" json:"requester"`
	Location  string    `json:"location"`
	Reason    string    `json:"reason"`
	Contact   string    `json:"contact"`
	Status    string    `gorm:"index" json:"status"` // "pending", "accepted", "rejected"
	CreatedAt string    `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt string    `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
