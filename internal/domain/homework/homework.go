// internal/domain/homework/homework.go
package homework

import (
	"context"
	"fmt"
)

const (
	fieldName   = "homework_name"
	fieldStatus = "status"
)

// Homework is a single review record as returned by the API.
// Fields are kept untyped; presence is checked when the record is formatted.
type Homework map[string]any

// Name returns the homework_name field and whether it is present.
func (h Homework) Name() (string, bool) {
	v, ok := h[fieldName]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Status returns the status field and whether it is present.
func (h Homework) Status() (Status, bool) {
	v, ok := h[fieldStatus]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return Status(s), true
	}
	return Status(fmt.Sprint(v)), true
}

// StatusClient fetches the raw homework_statuses payload.
type StatusClient interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}
