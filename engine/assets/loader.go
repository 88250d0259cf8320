package assets

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader decodes a file into a T.
type Loader[T any] interface {
	Load(path string) (T, error)
}

// TOMLLoader decodes TOML files on top of the value returned by Defaults,
// so keys missing from the file keep their default.
type TOMLLoader[T any] struct {
	Defaults func() T
	// Strict rejects keys that do not map onto a field of T.
	Strict bool
}

func (l TOMLLoader[T]) Load(path string) (T, error) {
	var out T
	if l.Defaults != nil {
		out = l.Defaults()
	}
	f, err := os.Open(path)
	if err != nil {
		return out, err
	}
	defer f.Close()

	decoder := toml.NewDecoder(f)
	if l.Strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return out, nil
}
