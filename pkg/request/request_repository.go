package request

import (
	"context"

	"share-a-bite-backend/entities"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.FoodRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error)
		GetRequestsByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error)
		GetRequestsByRequester(ctx context.Context, email string) ([]entities.FoodRequest, error)
		UpdateRequest(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteRequestsByFood(ctx context.Context, foodID string) error
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error) {
	var request entities.FoodRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetRequestsByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error) {
	requests := make([]entities.FoodRequest, 0)
	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetRequestsByRequester(ctx context.Context, email string) ([]entities.FoodRequest, error) {
	requests := make([]entities.FoodRequest, 0)
	if err := r.db.WithContext(ctx).
		Where("requester_email = ?", email).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) UpdateRequest(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.FoodRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *requestRepository) DeleteRequestsByFood(ctx context.Context, foodID string) error {
	return r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Delete(&entities.FoodRequest{}).Error
}
