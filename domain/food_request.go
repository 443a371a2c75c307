package domain

import "errors"

var (
	MessageMissingFields    = "Missing fields"
	MessageFoodNotAvailable = "Food not available"
	MessageInvalidStatus    = "Invalid status"
	MessageRequestNotFound  = "Request not found"

	MessageFailedCreateRequest   = "Failed to create request"
	MessageFailedFetchRequests   = "Failed to fetch requests"
	MessageFailedUpdateRequest   = "Failed to update request"
	MessageFailedFetchMyRequests = "Failed to fetch my requests"

	ErrRequestNotFound  = errors.New("request not found")
	ErrFoodNotAvailable = errors.New("food not available")
	ErrInvalidStatus    = errors.New("invalid request status")
)

type (
	RequesterInput struct {
		UID      string `json:"uid"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		PhotoURL string `json:"photoURL"`
	}

	CreateFoodRequestRequest struct {
		Location  string         `json:"location" validate:"required"`
		Reason    string         `json:"reason" validate:"required"`
		Contact   string         `json:"contact" validate:"required"`
		Requester RequesterInput `json:"requester"`
		// Plain name/email are the last-resort requester fallback for
		// callers that do not send a requester object.
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	DecideRequestRequest struct {
		Status    string `json:"status"`
		UserEmail string `json:"userEmail"`
	}
)
