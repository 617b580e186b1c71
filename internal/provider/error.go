package provider

import (
	"errors"
	"fmt"
)

// ErrNoData is wrapped when the upstream answered but returned no bars.
var ErrNoData = errors.New("no data returned")

// Error is a provider failure (network, auth, unknown symbol). It is surfaced, never retried.
type Error struct {
	Provider string
	Symbol   string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Symbol, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap returns err as an *Error for provider and symbol; nil stays nil.
func Wrap(provider, symbol string, err error) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return err
	}
	return &Error{Provider: provider, Symbol: symbol, Err: err}
}
