package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// isCorruptCacheEntry reports whether a cache read failed because the stored
// value no longer decodes, as opposed to the cache being unreachable.
func isCorruptCacheEntry(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
