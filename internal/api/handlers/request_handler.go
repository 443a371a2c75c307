package handlers

import (
	"errors"

	"share-a-bite-backend/domain"
	"share-a-bite-backend/internal/api/presenters"
	"share-a-bite-backend/pkg/identity"
	"share-a-bite-backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		CreateRequest(c *fiber.Ctx) error
		GetRequestsForFood(c *fiber.Ctx) error
		DecideRequest(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
		resolver       identity.Resolver
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate, resolver identity.Resolver) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
		resolver:       resolver,
	}
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingFields, nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingFields, nil)
	}

	created, err := h.requestService.CreateRequest(c.Context(), c.Params("foodId"), *req, h.resolver.Resolve(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		case errors.Is(err, domain.ErrFoodNotAvailable):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFoodNotAvailable, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRequest, err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, "request", created)
}

func (h *requestHandler) GetRequestsForFood(c *fiber.Ctx) error {
	email := ""
	if user := h.resolver.Resolve(c); user != nil {
		email = user.Email
	} else {
		email = c.Query("email")
	}

	requests, err := h.requestService.GetRequestsForFood(c.Context(), c.Params("foodId"), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		case errors.Is(err, domain.ErrMissingIdentity):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageMissingIdentityQuery, nil)
		case errors.Is(err, domain.ErrNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageNotAllowed, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRequests, err)
		}
	}
	return c.JSON(requests)
}

func (h *requestHandler) DecideRequest(c *fiber.Ctx) error {
	req := new(domain.DecideRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidStatus, nil)
	}

	email := ""
	if user := h.resolver.Resolve(c); user != nil {
		email = user.Email
	} else {
		email = req.UserEmail
	}

	updated, err := h.requestService.DecideRequest(c.Context(), c.Params("requestId"), req.Status, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidStatus, nil)
		case errors.Is(err, domain.ErrRequestNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRequestNotFound, nil)
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, nil)
		case errors.Is(err, domain.ErrMissingIdentity):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageMissingIdentityBody, nil)
		case errors.Is(err, domain.ErrNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageNotAllowed, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRequest, err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, "request", updated)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	email := ""
	if user := h.resolver.Resolve(c); user != nil {
		email = user.Email
	} else {
		email = c.Query("email")
	}
	if email == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingIdentityMyRequests, nil)
	}

	requests, err := h.requestService.GetMyRequests(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchMyRequests, err)
	}
	return c.JSON(requests)
}
