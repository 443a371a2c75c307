package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"share-a-bite-backend/domain"
	"share-a-bite-backend/entities"
	"share-a-bite-backend/internal/utils/mailing"
	"share-a-bite-backend/pkg/food"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, foodID string, req domain.CreateFoodRequestRequest, user *domain.UserIdentity) (*entities.FoodRequest, error)
		GetRequestsForFood(ctx context.Context, foodID string, callerEmail string) ([]entities.FoodRequest, error)
		DecideRequest(ctx context.Context, requestID string, status string, callerEmail string) (*entities.FoodRequest, error)
		GetMyRequests(ctx context.Context, email string) ([]entities.FoodRequest, error)
	}

	requestService struct {
		requestRepository RequestRepository
		foodRepository    food.FoodRepository
		mailer            mailing.Mailer
	}
)

func NewRequestService(requestRepository RequestRepository, foodRepository food.FoodRepository, mailer mailing.Mailer) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		foodRepository:    foodRepository,
		mailer:            mailer,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, foodID string, req domain.CreateFoodRequestRequest, user *domain.UserIdentity) (*entities.FoodRequest, error) {
	target, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	if target.Status != "" && !strings.EqualFold(target.Status, entities.FoodStatusAvailable) {
		return nil, domain.ErrFoodNotAvailable
	}

	requester := entities.Requester{
		UID:      req.Requester.UID,
		Name:     req.Requester.Name,
		Email:    req.Requester.Email,
		PhotoURL: req.Requester.PhotoURL,
	}
	if requester.Name == "" {
		requester.Name = req.Name
	}
	if requester.Email == "" {
		requester.Email = req.Email
	}
	// Header/token identity wins over anything body-supplied.
	if user != nil {
		requester.Name = user.Name
		requester.Email = user.Email
		if user.Picture != "" {
			requester.PhotoURL = user.Picture
		}
	}
	if requester.Name == "" {
		requester.Name = "Anonymous"
	}

	request := &entities.FoodRequest{
		ID:        "req-" + uuid.NewString(),
		FoodID:    foodID,
		Requester: requester,
		Location:  req.Location,
		Reason:    req.Reason,
		Contact:   req.Contact,
		Status:    entities.RequestStatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) GetRequestsForFood(ctx context.Context, foodID string, callerEmail string) ([]entities.FoodRequest, error) {
	target, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	if callerEmail == "" {
		return nil, domain.ErrMissingIdentity
	}
	if target.Donator.Email != callerEmail {
		return nil, domain.ErrNotAllowed
	}

	return s.requestRepository.GetRequestsByFood(ctx, foodID)
}

func (s *requestService) DecideRequest(ctx context.Context, requestID string, status string, callerEmail string) (*entities.FoodRequest, error) {
	if status != entities.RequestStatusAccepted &&
		status != entities.RequestStatusRejected &&
		status != entities.RequestStatusPending {
		return nil, domain.ErrInvalidStatus
	}

	request, err := s.requestRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	target, err := s.foodRepository.GetFoodByID(ctx, request.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}

	if callerEmail == "" {
		return nil, domain.ErrMissingIdentity
	}
	if target.Donator.Email != callerEmail {
		return nil, domain.ErrNotAllowed
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.requestRepository.UpdateRequest(ctx, requestID, map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}); err != nil {
		return nil, err
	}

	// Acceptance is the one cross-entity transition: the listing is handed
	// over. One-way; changing the request again does not revert it.
	if status == entities.RequestStatusAccepted {
		if err := s.foodRepository.UpdateFood(ctx, target.ID, map[string]interface{}{
			"status":     entities.FoodStatusDonated,
			"updated_at": now,
		}); err != nil {
			return nil, err
		}
	}

	updated, err := s.requestRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.notifyRequester(updated, target)
	return updated, nil
}

func (s *requestService) GetMyRequests(ctx context.Context, email string) ([]entities.FoodRequest, error) {
	return s.requestRepository.GetRequestsByRequester(ctx, email)
}

// notifyRequester mails the requester about the decision. Best-effort: a
// failed or unconfigured mailer never affects the response.
func (s *requestService) notifyRequester(request *entities.FoodRequest, target *entities.Food) {
	if s.mailer == nil || request.Requester.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your request for %q is %s", target.Name, request.Status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>The donor has marked your request for <b>%s</b> as <b>%s</b>.</p>",
		request.Requester.Name, target.Name, request.Status,
	)
	if err := s.mailer.Send(request.Requester.Email, subject, body); err != nil {
		log.Warn().Err(err).Str("request_id", request.ID).Msg("failed to send request decision mail")
	}
}
