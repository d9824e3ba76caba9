package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/laundry-service/internal/api/dto"
	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/service"
	"github.com/spec-kit/laundry-service/internal/validation"
	"github.com/spec-kit/laundry-service/pkg/util"
)

// OrdersHandler manages order CRUD endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("invalid payload")
	}
	if errs := req.Validate(); errs.Has() {
		return util.NewValidationError("Validation failed", errs)
	}

	// Validate already checked the id and dates; parse errors cannot occur.
	userID, _ := primitive.ObjectIDFromHex(req.User)
	pickup, _ := validation.ParseDate(req.PickupDate)

	input := service.OrderCreateInput{
		User:       userID,
		Items:      req.Items,
		Address:    req.Address,
		PickupDate: pickup,
		TotalPrice: req.TotalPrice,
	}
	if req.DeliveryDate != "" {
		delivery, _ := validation.ParseDate(req.DeliveryDate)
		input.DeliveryDate = &delivery
	}

	order, err := h.orders.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(order)
}

// List handles GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// GetByID handles GET /orders/:id.
func (h *OrdersHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// Update handles PATCH /orders/:id. Only status, deliveryDate and totalPrice
// can change; a zero value is treated as absent.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("invalid payload")
	}
	if errs := req.Validate(); errs.Has() {
		return util.NewValidationError("Validation failed", errs)
	}

	input := service.OrderUpdateInput{
		Status:     domain.OrderStatus(req.Status),
		TotalPrice: req.TotalPrice,
	}
	if req.DeliveryDate != "" {
		delivery, _ := validation.ParseDate(req.DeliveryDate)
		input.DeliveryDate = &delivery
	}

	order, err := h.orders.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("invalid payload")
	}
	if errs := req.Validate(); errs.Has() {
		return util.NewValidationError("Validation failed", errs)
	}

	order, err := h.orders.UpdateStatus(c.Context(), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// Delete handles DELETE /orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	if err := h.orders.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
