package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	WatchListKeyPrefix = "watchlist:%d"
	ResetTicketPrefix  = "reset:%s"
)

const (
	UserTTL        = 5 * time.Minute
	WatchListTTL   = 2 * time.Minute
	ResetTicketTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func WatchListKey(userID uint) string {
	return fmt.Sprintf(WatchListKeyPrefix, userID)
}

func ResetTicketKey(token string) string {
	return fmt.Sprintf(ResetTicketPrefix, token)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateWatchList(ctx context.Context, userID uint) {
	Invalidate(ctx, WatchListKey(userID))
}
