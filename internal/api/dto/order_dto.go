package dto

import (
	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/validation"
)

var allowedStatuses = []string{
	string(domain.OrderStatusPending),
	string(domain.OrderStatusInProgress),
	string(domain.OrderStatusCompleted),
}

// CreateOrderRequest payload for new orders. Dates travel as strings and are
// parsed with the supported layouts.
type CreateOrderRequest struct {
	User         string   `json:"user"`
	Items        []string `json:"items"`
	Address      string   `json:"address"`
	PickupDate   string   `json:"pickupDate"`
	DeliveryDate string   `json:"deliveryDate"`
	TotalPrice   float64  `json:"totalPrice"`
}

// Validate checks all fields required to create an order.
func (r *CreateOrderRequest) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("user", r.User)
	errs.ObjectID("user", r.User)
	errs.NonEmptyList("items", r.Items)
	errs.Required("address", r.Address)
	errs.Required("pickupDate", r.PickupDate)
	errs.Date("pickupDate", r.PickupDate)
	errs.Date("deliveryDate", r.DeliveryDate)
	return errs
}

// UpdateOrderRequest payload for partial updates. A zero value (empty string,
// zero price) is treated as absent, so a caller cannot reset a field to its
// zero value.
type UpdateOrderRequest struct {
	Status       string  `json:"status"`
	DeliveryDate string  `json:"deliveryDate"`
	TotalPrice   float64 `json:"totalPrice"`
}

// Validate checks only the fields considered present.
func (r *UpdateOrderRequest) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.OneOf("status", r.Status, allowedStatuses)
	errs.Date("deliveryDate", r.DeliveryDate)
	return errs
}

// UpdateStatusRequest payload for the status-only update route.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate requires a status from the allow-list.
func (r *UpdateStatusRequest) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("status", r.Status)
	errs.OneOf("status", r.Status, allowedStatuses)
	return errs
}
