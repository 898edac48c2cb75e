package commands

import (
	"errors"
	"time"

	"carrybee/internal/pkg/guard"
)

var (
	ErrExpireOffersCommandIsNotConstructed = errors.New(
		"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
	)
	ErrExpiryCutoffIsRequired = errors.New("expiry cutoff must not be zero")
)

// ExpireOffersCommand represents a request to sweep expired daily offers
// out of the active set. Carries the cutoff instant so the sweep is
// deterministic regardless of when the job actually runs.
type ExpireOffersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireOffersCommand creates a command to deactivate offers expired at now.
func NewExpireOffersCommand(now time.Time) (ExpireOffersCommand, error) {
	offersCommand := ExpireOffersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return ExpireOffersCommand{}, ErrExpiryCutoffIsRequired
	}
	offersCommand.now = now

	return offersCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}

// Now returns the cutoff instant for the sweep.
func (c ExpireOffersCommand) Now() time.Time {
	return c.now
}
