// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sejour/internal/delivery/http/response"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for property catalog and booking handlers.
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	bookingUC  usecase.BookingUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(propertyUC usecase.PropertyUsecase, bookingUC usecase.BookingUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: propertyUC,
		bookingUC:  bookingUC,
		logger:     logger,
	}
}

// principal extracts the authenticated user's id set by the auth middleware.
func principal(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// propertyIDParam parses the :id path parameter.
func propertyIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	return id, nil
}

// requireOwner rejects callers that do not own the property.
func (h *PropertyHandler) requireOwner(c echo.Context, propertyID uuid.UUID) (uuid.UUID, error) {
	userID, err := principal(c)
	if err != nil {
		return uuid.Nil, err
	}

	ownerID, err := h.propertyUC.OwnerID(c.Request().Context(), propertyID)
	if err != nil {
		return uuid.Nil, err
	}
	if ownerID != userID {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return userID, nil
}

// Create handles the property creation request.
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	var input usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	property, err := h.propertyUC.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created successfully")
}

// Search handles the filtered, paginated listing search.
func (h *PropertyHandler) Search(c echo.Context) error {
	input := &usecase.SearchPropertiesInput{
		Description: c.QueryParam("description"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "minPrice must be a number")
		}
		input.MinPrice = &minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "maxPrice must be a number")
		}
		input.MaxPrice = &maxPrice
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "limit must be an integer")
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("pageNumber"); raw != "" {
		pageNumber, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "pageNumber must be an integer")
		}
		input.PageNumber = pageNumber
	}

	properties, err := h.propertyUC.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "Properties retrieved successfully")
}

// Get handles the single property lookup.
func (h *PropertyHandler) Get(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	property, err := h.propertyUC.Get(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property retrieved successfully")
}

// CreateBooking handles the booking creation request against a property.
func (h *PropertyHandler) CreateBooking(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.CreateBookingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.Create(c.Request().Context(), userID, propertyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking created successfully")
}

// Update handles the partial property update. Only the owner may update.
func (h *PropertyHandler) Update(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	if _, err := h.requireOwner(c, propertyID); err != nil {
		return err
	}

	var input usecase.UpdatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	property, err := h.propertyUC.Update(c.Request().Context(), propertyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property updated successfully")
}

// Archive handles the soft delete. Only the owner may archive.
func (h *PropertyHandler) Archive(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	if _, err := h.requireOwner(c, propertyID); err != nil {
		return err
	}

	if err := h.propertyUC.Archive(c.Request().Context(), propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Property archived"}, "Property archived successfully")
}
