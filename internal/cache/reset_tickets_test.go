package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	t.Cleanup(Close)
	return mr
}

func TestResetTicket_RoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	token, err := IssueResetTicket(ctx, "moviefan")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, ConsumeResetTicket(ctx, token, "moviefan"))
	// Single use: the second consume fails
	assert.False(t, ConsumeResetTicket(ctx, token, "moviefan"))
}

func TestResetTicket_WrongUser(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	token, err := IssueResetTicket(ctx, "moviefan")
	require.NoError(t, err)

	assert.False(t, ConsumeResetTicket(ctx, token, "someone_else"))
	// The failed attempt still burned the ticket
	assert.False(t, ConsumeResetTicket(ctx, token, "moviefan"))
}

func TestResetTicket_Expiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	token, err := IssueResetTicket(ctx, "moviefan")
	require.NoError(t, err)

	mr.FastForward(ResetTicketTTL + time.Minute)
	assert.False(t, ConsumeResetTicket(ctx, token, "moviefan"))
}

func TestResetTicket_NoRedis(t *testing.T) {
	client = nil
	ctx := context.Background()

	assert.False(t, TicketsAvailable())

	token, err := IssueResetTicket(ctx, "moviefan")
	assert.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, ConsumeResetTicket(ctx, token, "moviefan"))
}

func TestCacheAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			dest.Name = "from-db"
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, "from-db", first.Name)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache
	var second payload
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, "from-db", second.Name)
	assert.Equal(t, 1, calls)
}
