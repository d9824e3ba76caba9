// Package validation provides explicit per-field input checks. Each rule
// records at most one message per field; the resulting map is rendered as the
// "errors" object of a 400 response.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateLayouts are tried in order when parsing wire dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Errors maps field name to the first failing rule's message.
type Errors map[string]string

// Has reports whether any rule failed.
func (e Errors) Has() bool { return len(e) > 0 }

func (e Errors) add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Required fails when value is empty.
func (e Errors) Required(field, value string) {
	if value == "" {
		e.add(field, fmt.Sprintf("%s is required", field))
	}
}

// MinLen fails when value is shorter than n characters. Empty values are
// skipped so Required controls the presence message.
func (e Errors) MinLen(field, value string, n int) {
	if value == "" {
		return
	}
	if len([]rune(value)) < n {
		e.add(field, fmt.Sprintf("%s must be at least %d characters", field, n))
	}
}

// Email fails when value is not a well-formed email address.
func (e Errors) Email(field, value string) {
	if value == "" {
		return
	}
	if !emailRE.MatchString(value) {
		e.add(field, fmt.Sprintf("%s must be a valid email address", field))
	}
}

// ObjectID fails when value is not a well-formed store identifier.
func (e Errors) ObjectID(field, value string) {
	if value == "" {
		return
	}
	if _, err := primitive.ObjectIDFromHex(value); err != nil {
		e.add(field, fmt.Sprintf("%s must be a valid id", field))
	}
}

// Date fails when value does not parse with any supported layout.
func (e Errors) Date(field, value string) {
	if value == "" {
		return
	}
	if _, err := ParseDate(value); err != nil {
		e.add(field, fmt.Sprintf("%s must be a valid date", field))
	}
}

// NonEmptyList fails when items is empty or contains a blank entry.
func (e Errors) NonEmptyList(field string, items []string) {
	if len(items) == 0 {
		e.add(field, fmt.Sprintf("%s must contain at least one entry", field))
		return
	}
	for _, item := range items {
		if item == "" {
			e.add(field, fmt.Sprintf("%s must not contain empty entries", field))
			return
		}
	}
}

// OneOf fails when value is not in allowed. Empty values are skipped.
func (e Errors) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.add(field, fmt.Sprintf("%s must be one of: %s", field, join(allowed)))
}

// ParseDate parses a wire date trying the supported layouts in order.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func join(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
