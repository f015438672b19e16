package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeout is returned when a command could not finish within its context
// deadline, typically because the job row lock was held by a concurrent
// mutation for too long. The caller may retry; no partial state is left
// behind because the transaction rolls back.
var ErrTimeout = errors.New("operation timed out")

// mapTimeout translates context deadline expiry into ErrTimeout so transport
// adapters can distinguish retryable lock contention from hard failures.
func mapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
