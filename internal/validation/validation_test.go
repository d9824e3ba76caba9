package validation_test

import (
	"testing"

	"github.com/spec-kit/laundry-service/internal/validation"
)

func TestRequired(t *testing.T) {
	errs := validation.Errors{}
	errs.Required("username", "")
	if _, ok := errs["username"]; !ok {
		t.Error("expected username to be required")
	}

	errs = validation.Errors{}
	errs.Required("username", "abc")
	if errs.Has() {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestMinLen(t *testing.T) {
	errs := validation.Errors{}
	errs.MinLen("username", "ab", 3)
	if _, ok := errs["username"]; !ok {
		t.Error("expected min length failure")
	}

	errs = validation.Errors{}
	errs.MinLen("username", "abc", 3)
	if errs.Has() {
		t.Errorf("expected abc to pass, got: %v", errs)
	}

	// Empty values are left to Required.
	errs = validation.Errors{}
	errs.MinLen("username", "", 3)
	if errs.Has() {
		t.Errorf("expected empty value to be skipped, got: %v", errs)
	}
}

func TestEmail(t *testing.T) {
	errs := validation.Errors{}
	errs.Email("email", "not-an-email")
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}

	errs = validation.Errors{}
	errs.Email("email", "a@b.com")
	if errs.Has() {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestObjectID(t *testing.T) {
	errs := validation.Errors{}
	errs.ObjectID("user", "not-hex")
	if _, ok := errs["user"]; !ok {
		t.Error("expected object id validation error")
	}

	errs = validation.Errors{}
	errs.ObjectID("user", "65b3f0c2a1b2c3d4e5f60718")
	if errs.Has() {
		t.Errorf("expected valid id to pass, got: %v", errs)
	}
}

func TestDateLayouts(t *testing.T) {
	for _, val := range []string{"2026-01-15", "2026-01-15T10:30:00", "2026-01-15T10:30:00Z"} {
		if _, err := validation.ParseDate(val); err != nil {
			t.Errorf("expected %q to parse, got: %v", val, err)
		}
	}
	if _, err := validation.ParseDate("15/01/2026"); err == nil {
		t.Error("expected unsupported layout to fail")
	}

	errs := validation.Errors{}
	errs.Date("pickupDate", "yesterday")
	if _, ok := errs["pickupDate"]; !ok {
		t.Error("expected date validation error")
	}
}

func TestNonEmptyList(t *testing.T) {
	errs := validation.Errors{}
	errs.NonEmptyList("items", nil)
	if _, ok := errs["items"]; !ok {
		t.Error("expected empty list to fail")
	}

	errs = validation.Errors{}
	errs.NonEmptyList("items", []string{"shirt", ""})
	if _, ok := errs["items"]; !ok {
		t.Error("expected blank entry to fail")
	}

	errs = validation.Errors{}
	errs.NonEmptyList("items", []string{"shirt"})
	if errs.Has() {
		t.Errorf("expected one item to pass, got: %v", errs)
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"Pending", "In Progress", "Completed"}

	errs := validation.Errors{}
	errs.OneOf("status", "Shipped", allowed)
	if _, ok := errs["status"]; !ok {
		t.Error("expected unknown status to fail")
	}

	for _, status := range allowed {
		errs = validation.Errors{}
		errs.OneOf("status", status, allowed)
		if errs.Has() {
			t.Errorf("expected %q to pass, got: %v", status, errs)
		}
	}
}

func TestFirstMessageWins(t *testing.T) {
	errs := validation.Errors{}
	errs.Required("username", "")
	errs.MinLen("username", "", 3)
	if len(errs) != 1 {
		t.Errorf("expected a single message for username, got: %v", errs)
	}
}
