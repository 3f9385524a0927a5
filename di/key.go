package di

import "reflect"

// Key identifies a dependency: a type plus an optional qualifier. Keys are
// comparable and used directly as map keys.
type Key struct {
	Type      reflect.Type
	Qualifier string
}

// KeyOf returns the unqualified key for T.
func KeyOf[T any]() Key {
	return Key{Type: reflect.TypeFor[T]()}
}

// Named returns the key for T under qualifier.
func Named[T any](qualifier string) Key {
	return Key{Type: reflect.TypeFor[T](), Qualifier: qualifier}
}

// WithQualifier returns a copy of k under qualifier.
func (k Key) WithQualifier(qualifier string) Key {
	k.Qualifier = qualifier
	return k
}

// String renders the key as "type" or "type[qualifier]".
func (k Key) String() string {
	if k.Type == nil {
		return "<nil>"
	}
	if k.Qualifier == "" {
		return k.Type.String()
	}
	return k.Type.String() + "[" + k.Qualifier + "]"
}

func keyStrings(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
