package banking

import (
	"fmt"
	"time"
)

// Client is the narrow interface to one bank login. The wire protocol
// behind it (FinTS dialog, MT940 parsing) lives outside this codebase.
type Client interface {
	// Accounts lists the SEPA accounts reachable with this login.
	Accounts() ([]SEPAAccount, error)

	// Statement fetches the transactions of one account for the given
	// date window, in source order, together with the closing balance.
	Statement(acc SEPAAccount, from, to time.Time) (*Batch, error)
}

// Dialer opens a Client for one login. Swappable so tests can inject
// a fake backend.
type Dialer func(blz, user, pin, url string) (Client, error)

// ProtocolError means the backend rejected the dialog or a request
// mid-run. Callers skip the affected login or account and continue.
type ProtocolError struct {
	BLZ  string
	User string
	Op   string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("bank %s login %s: %s: %v", e.BLZ, e.User, e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
