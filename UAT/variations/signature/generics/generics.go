// Package generics demonstrates mocking generic interfaces and generic
// functions.
package generics

import "fmt"

// Repository is a generic interface for storage operations.
type Repository[T any] interface {
	Save(item T) error
	Get(id string) (T, error)
}

// DecodeFunc decodes raw into a T. Generic functions cannot be passed
// around uninstantiated, so callers receive a decoder per type.
type DecodeFunc[T any] func(raw string) (T, error)

// LoadAll decodes every raw value.
func LoadAll[T any](decode DecodeFunc[T], raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))

	for _, r := range raw {
		v, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", r, err)
		}

		out = append(out, v)
	}

	return out, nil
}

// ProcessItem is a generic function that uses a generic repository.
func ProcessItem[T any](repo Repository[T], id string, transformer func(T) T) error {
	item, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	transformed := transformer(item)

	err = repo.Save(transformed)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	return nil
}
