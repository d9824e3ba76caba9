package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus labels an order's progress. The three labels form an open set:
// any label may follow any other, no transition order is enforced.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// Order is a laundry pickup/delivery order. User references a User id but the
// store does not enforce the reference; dangling ids are possible.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Items        []string           `bson:"items" json:"items"`
	Status       OrderStatus        `bson:"status" json:"status"`
	Address      string             `bson:"address" json:"address"`
	PickupDate   time.Time          `bson:"pickupDate" json:"pickupDate"`
	DeliveryDate *time.Time         `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	TotalPrice   float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
