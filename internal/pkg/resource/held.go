package resource

import (
	"context"
	"errors"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// LoadCollection reads the collection held for the session under name.
// A session that never mounted the list gets an empty loading collection.
func LoadCollection[R Identifiable](ctx context.Context, store session.Store, sid, name string) (*Collection[R], error) {
	c := NewCollection[R]()
	err := store.LoadView(ctx, sid, name, c)
	if errors.Is(err, session.ErrNotFound) {
		return NewCollection[R](), nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []R{}
	}
	return c, nil
}

// SaveCollection persists the collection held for the session under name
func SaveCollection[R Identifiable](ctx context.Context, store session.Store, sid, name string, c *Collection[R]) error {
	return store.SaveView(ctx, sid, name, c)
}
