package food

import (
	"context"

	"share-a-bite-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		GetFoods(ctx context.Context, status, donatorEmail string) ([]entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoodsByDonator(ctx context.Context, email string) ([]entities.Food, error)
		CreateFood(ctx context.Context, food *entities.Food) error
		UpdateFood(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteFood(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetFoods(ctx context.Context, status, donatorEmail string) ([]entities.Food, error) {
	foods := make([]entities.Food, 0)

	query := r.db.WithContext(ctx).Model(&entities.Food{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if donatorEmail != "" {
		query = query.Where("donator_email = ?", donatorEmail)
	}

	if err := query.
		Order("quantity_number DESC").
		Order("created_at DESC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoodsByDonator(ctx context.Context, email string) ([]entities.Food, error) {
	foods := make([]entities.Food, 0)
	if err := r.db.WithContext(ctx).
		Where("donator_email = ?", email).
		Order("created_at DESC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) UpdateFood(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}
