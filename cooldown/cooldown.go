// Package cooldown rate limits commands per key, such as a user and command pair.
package cooldown

import (
	"context"
	"errors"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
)

var ErrStoreClosed = errors.New("cooldown store is closed")

// Store remembers which keys are cooling down.
type Store interface {
	// Acquire starts a cooldown of duration for key. When key is already cooling
	// down it returns false and the time left.
	Acquire(ctx context.Context, key string, duration time.Duration) (ok bool, remaining time.Duration, err error)

	// Reset ends the cooldown of key.
	Reset(ctx context.Context, key string) error

	Close() error
}

// Key builds the key of a command invoked by a user.
func Key(command string, userID discord.Snowflake) string {
	return command + ":" + userID.String()
}

func validate(key string, duration time.Duration) error {
	if key == "" {
		return discord.NewArgumentError("key", "key is required")
	}

	if duration <= 0 {
		return discord.NewArgumentError("duration", "duration must be positive")
	}

	return nil
}
