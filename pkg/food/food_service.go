package food

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"share-a-bite-backend/domain"
	"share-a-bite-backend/entities"
	"share-a-bite-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		GetFoods(ctx context.Context, status, donatorEmail string) ([]entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetMyFoods(ctx context.Context, email string) ([]entities.Food, error)
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, user *domain.UserIdentity) (*entities.Food, error)
		UpdateFood(ctx context.Context, id string, updates map[string]interface{}, callerEmail string) (*entities.Food, error)
		DeleteFood(ctx context.Context, id string, callerEmail string) error
		AttachFoodImage(ctx context.Context, id string, file *multipart.FileHeader, callerEmail string) (*entities.Food, error)
	}

	// RequestRemover is the slice of the request store the cascade delete
	// needs; the request repository satisfies it.
	RequestRemover interface {
		DeleteRequestsByFood(ctx context.Context, foodID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		requestRemover RequestRemover
		s3             storage.AwsS3
	}
)

// updatableFoodColumns is the allow-list for partial updates, keyed by the
// public field name. Anything else in a PATCH body is rejected so callers
// cannot overwrite the id or the donator identity.
var updatableFoodColumns = map[string]string{
	"name":           "name",
	"image":          "image",
	"quantityText":   "quantity_text",
	"quantityNumber": "quantity_number",
	"pickupLocation": "pickup_location",
	"expireDate":     "expire_date",
	"notes":          "notes",
	"status":         "status",
}

func NewFoodService(foodRepository FoodRepository, requestRemover RequestRemover, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		requestRemover: requestRemover,
		s3:             s3,
	}
}

func (s *foodService) GetFoods(ctx context.Context, status, donatorEmail string) ([]entities.Food, error) {
	return s.foodRepository.GetFoods(ctx, status, donatorEmail)
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) GetMyFoods(ctx context.Context, email string) ([]entities.Food, error) {
	return s.foodRepository.GetFoodsByDonator(ctx, email)
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, user *domain.UserIdentity) (*entities.Food, error) {
	donator := entities.Donator{
		UID:   req.Donator.UID,
		Name:  req.Donator.Name,
		Email: req.Donator.Email,
		Photo: req.Donator.Photo,
	}
	// Header/token identity wins over body-supplied donor fields.
	if user != nil {
		donator.Name = user.Name
		donator.Email = user.Email
		if user.Picture != "" {
			donator.Photo = user.Picture
		}
	}

	quantityNumber := 0
	if req.QuantityNumber != nil {
		quantityNumber = *req.QuantityNumber
	} else if req.QuantityText != "" {
		quantityNumber = domain.ParseQuantityNumber(req.QuantityText)
	}

	status := req.Status
	if status == "" {
		status = entities.FoodStatusAvailable
	}

	food := &entities.Food{
		ID:             "food-" + uuid.NewString(),
		Name:           req.Name,
		Image:          req.Image,
		QuantityText:   req.QuantityText,
		QuantityNumber: quantityNumber,
		PickupLocation: req.PickupLocation,
		ExpireDate:     req.ExpireDate,
		Notes:          req.Notes,
		Donator:        donator,
		Status:         status,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, updates map[string]interface{}, callerEmail string) (*entities.Food, error) {
	if err := s.authorizeOwner(ctx, id, callerEmail); err != nil {
		return nil, err
	}

	columnUpdates := make(map[string]interface{}, len(updates)+1)
	for field, value := range updates {
		column, ok := updatableFoodColumns[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotAllowed, field)
		}
		columnUpdates[column] = value
	}

	// JSON numbers arrive as float64; store an integer.
	if qn, ok := columnUpdates["quantity_number"].(float64); ok {
		columnUpdates["quantity_number"] = int(qn)
	}
	if qt, ok := updates["quantityText"].(string); ok && qt != "" {
		if _, supplied := updates["quantityNumber"]; !supplied {
			columnUpdates["quantity_number"] = domain.ParseQuantityNumber(qt)
		}
	}
	columnUpdates["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.foodRepository.UpdateFood(ctx, id, columnUpdates); err != nil {
		return nil, err
	}
	return s.GetFoodByID(ctx, id)
}

func (s *foodService) DeleteFood(ctx context.Context, id string, callerEmail string) error {
	if err := s.authorizeOwner(ctx, id, callerEmail); err != nil {
		return err
	}

	// Two independent deletes; a crash in between leaves orphaned requests.
	if err := s.foodRepository.DeleteFood(ctx, id); err != nil {
		return err
	}
	return s.requestRemover.DeleteRequestsByFood(ctx, id)
}

func (s *foodService) AttachFoodImage(ctx context.Context, id string, file *multipart.FileHeader, callerEmail string) (*entities.Food, error) {
	if err := s.authorizeOwner(ctx, id, callerEmail); err != nil {
		return nil, err
	}

	key, err := s.s3.UploadFile(id, file, "foods", storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"image":      s.s3.GetPublicLinkKey(key),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.foodRepository.UpdateFood(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.GetFoodByID(ctx, id)
}

// authorizeOwner runs the existence -> identity -> ownership check shared by
// every listing mutation. The order matters: unknown listings are 404 before
// any identity check.
func (s *foodService) authorizeOwner(ctx context.Context, id string, callerEmail string) error {
	existing, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}
	if callerEmail == "" {
		return domain.ErrMissingIdentity
	}
	if existing.Donator.Email != callerEmail {
		return domain.ErrNotAllowed
	}
	return nil
}
