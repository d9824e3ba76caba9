package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/repository"
	"github.com/spec-kit/laundry-service/pkg/util"
)

// OrderCreateInput carries the validated fields of an order creation request.
type OrderCreateInput struct {
	User         primitive.ObjectID
	Items        []string
	Address      string
	PickupDate   time.Time
	DeliveryDate *time.Time
	TotalPrice   float64
}

// OrderUpdateInput carries a partial update. Zero values mean "absent": an
// empty status or a zero price leaves the stored field untouched.
type OrderUpdateInput struct {
	Status       domain.OrderStatus
	DeliveryDate *time.Time
	TotalPrice   float64
}

// OrderService coordinates order CRUD against the document store.
type OrderService struct {
	orders repository.OrderRepository
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Create persists a new order with status Pending. The user reference is not
// checked against the users collection.
func (s *OrderService) Create(ctx context.Context, input OrderCreateInput) (*domain.Order, error) {
	order := &domain.Order{
		User:         input.User,
		Items:        input.Items,
		Status:       domain.OrderStatusPending,
		Address:      input.Address,
		PickupDate:   input.PickupDate,
		DeliveryDate: input.DeliveryDate,
		TotalPrice:   input.TotalPrice,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns every order, unfiltered and unpaginated.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Get fetches one order by id.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, oid)
}

// Update applies the fields present in input and re-saves the order.
func (s *OrderService) Update(ctx context.Context, id string, input OrderUpdateInput) (*domain.Order, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.load(ctx, oid)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		order.Status = input.Status
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = input.DeliveryDate
	}
	if input.TotalPrice != 0 {
		order.TotalPrice = input.TotalPrice
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, s.mapStoreErr(err)
	}
	return order, nil
}

// UpdateStatus sets the status field only. Any allow-list value may follow
// any other; no transition order is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.load(ctx, oid)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, s.mapStoreErr(err)
	}
	return order, nil
}

// Delete removes the order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	oid, err := parseOrderID(id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, oid); err != nil {
		return s.mapStoreErr(err)
	}
	return nil
}

func (s *OrderService) load(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return order, nil
}

func (s *OrderService) mapStoreErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return util.NewNotFound("Order")
	}
	return err
}

func parseOrderID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, util.NewBadRequest("Invalid order id")
	}
	return oid, nil
}
