package storage

import "context"

// Storage persists analysis artifacts as JSON documents keyed by name.
type Storage interface {
	Save(ctx context.Context, key string, data interface{}) error
	Load(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
