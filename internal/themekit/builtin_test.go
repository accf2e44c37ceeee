package themekit

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuiltinLoader_Load(t *testing.T) {
	t.Parallel()

	loader := NewBuiltinLoader()

	t.Run("loads every preset", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"classic", "forest", "crimson", "slate"} {
			if _, err := loader.Load(name); err != nil {
				t.Errorf("Load(%q) error = %v", name, err)
			}
		}
	})

	t.Run("preset colors survive loading", func(t *testing.T) {
		t.Parallel()

		theme, err := loader.Load("forest")
		if err != nil {
			t.Fatalf("Load(\"forest\") error = %v", err)
		}
		if theme.Colors.Primary != "#15803d" {
			t.Errorf("Colors.Primary = %q, want %q", theme.Colors.Primary, "#15803d")
		}
	})

	t.Run("names are case-insensitive", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.Load("CLASSIC"); err != nil {
			t.Errorf("Load(\"CLASSIC\") error = %v", err)
		}
	})

	t.Run("unknown preset returns ErrKitNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Load("nonexistent")
		if !errors.Is(err, ErrKitNotFound) {
			t.Errorf("Load(\"nonexistent\") error = %v, want ErrKitNotFound", err)
		}
	})

	t.Run("invalid name returns ErrInvalidKitName", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Load("../classic")
		if !errors.Is(err, ErrInvalidKitName) {
			t.Errorf("Load(\"../classic\") error = %v, want ErrInvalidKitName", err)
		}
	})
}

func TestBuiltinLoader_Names(t *testing.T) {
	t.Parallel()

	got := NewBuiltinLoader().Names()
	want := []string{"classic", "crimson", "forest", "slate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
