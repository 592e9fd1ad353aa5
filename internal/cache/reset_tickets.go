package cache

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Reset tickets gate password resets behind a successful identity
// verification. A ticket is single-use and expires after ResetTicketTTL.

// TicketsAvailable reports whether the ticket store is usable. Without
// Redis, resets fall back to the unguarded flow.
func TicketsAvailable() bool {
	return client != nil
}

// IssueResetTicket stores a fresh single-use ticket bound to the username
// and returns the opaque token handed back to the caller.
func IssueResetTicket(ctx context.Context, username string) (string, error) {
	if client == nil {
		return "", nil
	}
	token := uuid.New().String()
	if err := client.Set(ctx, ResetTicketKey(token), username, ResetTicketTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeResetTicket atomically removes the ticket and reports whether it
// was valid for the given username. A consumed or expired ticket is invalid.
func ConsumeResetTicket(ctx context.Context, token, username string) bool {
	if client == nil || token == "" {
		return false
	}
	owner, err := client.GetDel(ctx, ResetTicketKey(token)).Result()
	if errors.Is(err, redis.Nil) || err != nil {
		return false
	}
	return owner == username
}
