package handlers

import (
	"encoding/json"
	"errors"

	"share-a-bite-backend/domain"
	"share-a-bite-backend/internal/api/presenters"
	"share-a-bite-backend/pkg/food"
	"share-a-bite-backend/pkg/identity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		CreateFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
		resolver    identity.Resolver
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate, resolver identity.Resolver) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
		resolver:    resolver,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context(), c.Query("status"), c.Query("donatorEmail"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchFoods, err)
	}
	return c.JSON(foods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	item, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchFood, err)
	}
	return c.JSON(item)
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidBody, nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingFoodName, nil)
	}

	item, err := h.foodService.CreateFood(c.Context(), *req, h.resolver.Resolve(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateFood, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, "food", item)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	updates := map[string]interface{}{}
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &updates); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidBody, nil)
		}
	}
	email := h.callerEmailWithBodyFallback(c, updates)
	delete(updates, "userEmail")

	item, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), updates, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		case errors.Is(err, domain.ErrMissingIdentity):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageMissingIdentityBody, nil)
		case errors.Is(err, domain.ErrNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageNotAllowed, nil)
		case errors.Is(err, domain.ErrFieldNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFood, err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, "food", item)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	body := map[string]interface{}{}
	if len(c.Body()) > 0 {
		_ = json.Unmarshal(c.Body(), &body)
	}
	email := h.callerEmailWithBodyFallback(c, body)

	if err := h.foodService.DeleteFood(c.Context(), c.Params("id"), email); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		case errors.Is(err, domain.ErrMissingIdentity):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageMissingIdentityBody, nil)
		case errors.Is(err, domain.ErrNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageNotAllowed, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFood, err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, "", nil)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	email := ""
	if user := h.resolver.Resolve(c); user != nil {
		email = user.Email
	} else {
		email = c.Query("email")
	}
	if email == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingIdentityMyFoods, nil)
	}

	foods, err := h.foodService.GetMyFoods(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchMine, err)
	}
	return c.JSON(foods)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingImage, nil)
	}

	email := ""
	if user := h.resolver.Resolve(c); user != nil {
		email = user.Email
	} else {
		email = c.FormValue("userEmail")
	}

	item, err := h.foodService.AttachFoodImage(c.Context(), c.Params("id"), file, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		case errors.Is(err, domain.ErrMissingIdentity):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageMissingIdentityBody, nil)
		case errors.Is(err, domain.ErrNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageNotAllowed, nil)
		case errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidImageFormat, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, "food", item)
}

// callerEmailWithBodyFallback resolves identity, falling back to the
// body-supplied userEmail when no header or token identity is present.
func (h *foodHandler) callerEmailWithBodyFallback(c *fiber.Ctx, body map[string]interface{}) string {
	if user := h.resolver.Resolve(c); user != nil {
		return user.Email
	}
	if v, ok := body["userEmail"].(string); ok {
		return v
	}
	return ""
}
