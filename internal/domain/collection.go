package domain

import "fmt"

type Record interface {
	RecordID() string
	Field(name string) (string, bool)
}

// Collection is a read-only view over one dataset array. Insertion order is
// preserved by every query.
type Collection[T Record] struct {
	name  string
	items []T
}

func NewCollection[T Record](name string, items []T) *Collection[T] {
	return &Collection[T]{name: name, items: items}
}

func (c *Collection[T]) ListAll() ([]T, error) {
	if c == nil || c.items == nil {
		return nil, fmt.Errorf("%w: collection not loaded", ErrQueryFailure)
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// FindByID matches the identifier exactly: no trimming, no case folding.
func (c *Collection[T]) FindByID(id string) (T, error) {
	var zero T
	if c == nil || c.items == nil {
		return zero, fmt.Errorf("%w: collection not loaded", ErrQueryFailure)
	}
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
}

// FilterByField returns items whose field equals value. No match is an empty,
// non-nil slice.
func (c *Collection[T]) FilterByField(field, value string) ([]T, error) {
	if c == nil || c.items == nil {
		return nil, fmt.Errorf("%w: collection not loaded", ErrQueryFailure)
	}
	out := make([]T, 0)
	for _, it := range c.items {
		v, ok := it.Field(field)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrQueryFailure, c.name, field, ErrUnknownField)
		}
		if v == value {
			out = append(out, it)
		}
	}
	return out, nil
}
