package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the order's status label. Orders are created Pending and stay Pending:
// kitchen progress lives in the preparation history, not on the order.
type Status string

const (
	Pending Status = "Pending"
)

// Validate accepts only known statuses.
func (s Status) Validate() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
