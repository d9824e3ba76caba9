package dto_test

import (
	"testing"

	"github.com/spec-kit/laundry-service/internal/api/dto"
)

const validUserID = "65b3f0c2a1b2c3d4e5f60718"

func validCreate() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		User:       validUserID,
		Items:      []string{"shirt", "trousers"},
		Address:    "12 Main St",
		PickupDate: "2026-09-01",
	}
}

func TestCreateOrderValid(t *testing.T) {
	req := validCreate()
	if errs := req.Validate(); errs.Has() {
		t.Errorf("expected valid request, got: %v", errs)
	}
}

func TestCreateOrderRequiredFields(t *testing.T) {
	req := dto.CreateOrderRequest{}
	errs := req.Validate()
	for _, field := range []string{"user", "items", "address", "pickupDate"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestCreateOrderEmptyItems(t *testing.T) {
	req := validCreate()
	req.Items = []string{}
	errs := req.Validate()
	if _, ok := errs["items"]; !ok {
		t.Error("expected empty items to fail")
	}
}

func TestCreateOrderBadDates(t *testing.T) {
	req := validCreate()
	req.PickupDate = "soon"
	if errs := req.Validate(); errs["pickupDate"] == "" {
		t.Error("expected bad pickupDate to fail")
	}

	req = validCreate()
	req.DeliveryDate = "later"
	if errs := req.Validate(); errs["deliveryDate"] == "" {
		t.Error("expected bad deliveryDate to fail")
	}

	req = validCreate()
	req.DeliveryDate = ""
	if errs := req.Validate(); errs.Has() {
		t.Errorf("expected empty deliveryDate to be optional, got: %v", errs)
	}
}

func TestUpdateOrderStatusAllowList(t *testing.T) {
	req := dto.UpdateOrderRequest{Status: "Shipped"}
	if errs := req.Validate(); errs["status"] == "" {
		t.Error("expected unknown status to fail")
	}

	// Empty status means "absent" on the partial update route.
	req = dto.UpdateOrderRequest{}
	if errs := req.Validate(); errs.Has() {
		t.Errorf("expected empty update to pass validation, got: %v", errs)
	}
}

func TestUpdateStatusRequired(t *testing.T) {
	req := dto.UpdateStatusRequest{}
	if errs := req.Validate(); errs["status"] == "" {
		t.Error("expected status to be required")
	}

	req = dto.UpdateStatusRequest{Status: "In Progress"}
	if errs := req.Validate(); errs.Has() {
		t.Errorf("expected valid status to pass, got: %v", errs)
	}
}
