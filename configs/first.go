package configs

import "errors"

// First returns the first value at path, or the zero value if no file defines it.
func First[T any](loader Loader, path string) (T, error) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, nil
		}
		return value, err
	}
	return value, nil
}

// Configurable is a config value type that knows where it lives.
type Configurable interface {
	ConfigPath() string
}

func Get[T Configurable](loader Loader) (T, error) {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
