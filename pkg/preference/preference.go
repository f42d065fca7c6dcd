package preference

import (
	"context"
	"strconv"
)

// RememberMeKey is the slot holding the "remember me" login flag.
const RememberMeKey = "rememberMeLogin"

// Store is a small durable key-value slot for user preferences.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}

// RememberMe reports whether the remember-me flag is set. A missing or
// unparseable value counts as false.
func RememberMe(ctx context.Context, store Store) (bool, error) {
	value, ok, err := store.Get(ctx, RememberMeKey)
	if err != nil || !ok {
		return false, err
	}
	remember, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return remember, nil
}

// SetRememberMe stores the flag when remember is true and clears it otherwise.
func SetRememberMe(ctx context.Context, store Store, remember bool) error {
	if remember {
		return store.Set(ctx, RememberMeKey, "true")
	}
	return store.Clear(ctx, RememberMeKey)
}
