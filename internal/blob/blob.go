// Package blob is the persistence layer: whole JSON documents stored under a
// fixed key, overwritten in full on every save.
package blob

import (
	"context"
	"errors"
)

// Keys of the three documents the service persists.
const (
	KeyDrinks     = "drinks"
	KeyOrders     = "orders"
	KeyStatistics = "statistics"
)

// ErrNotExist is returned by Load when nothing is stored under the key.
var ErrNotExist = errors.New("blob does not exist")

type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}
