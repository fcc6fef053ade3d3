package sherrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("message formatting", func(t *testing.T) {
		err := &ParseError{
			Path:    "openapi.yaml",
			Message: "root is not a mapping",
		}
		want := "parse error in openapi.yaml: root is not a mapping"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "bad YAML"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrStructure) {
			t.Error("ParseError should not match ErrStructure")
		}
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("unexpected end of stream")
		err := &ParseError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("ParseError should unwrap to its cause")
		}
	})

	t.Run("survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("loading primary: %w", &ParseError{Path: "a.yaml"})
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatal("errors.As should find ParseError through wrapping")
		}
		if pe.Path != "a.yaml" {
			t.Errorf("Path = %q, want %q", pe.Path, "a.yaml")
		}
	})
}

func TestStructureError(t *testing.T) {
	t.Run("message with path and key", func(t *testing.T) {
		err := &StructureError{
			Path:    "components",
			Key:     "schemas",
			Message: "required mapping is missing",
		}
		want := "structure error at components.schemas: required mapping is missing"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("message with key only", func(t *testing.T) {
		err := &StructureError{Key: "paths", Message: "not a mapping"}
		want := "structure error at paths: not a mapping"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("matches ErrStructure", func(t *testing.T) {
		err := &StructureError{Key: "schemas"}
		if !errors.Is(err, ErrStructure) {
			t.Error("StructureError should match ErrStructure")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("message formatting", func(t *testing.T) {
		err := &ConfigError{
			Option:  "primary",
			Value:   "missing.yaml",
			Message: "file not found",
		}
		want := "configuration error for primary (value: missing.yaml): file not found"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

func TestWriteError(t *testing.T) {
	t.Run("message formatting", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := &WriteError{
			Path:    "openapi-backup.yaml",
			Message: "creating backup",
			Cause:   cause,
		}
		want := "write error for openapi-backup.yaml: creating backup: permission denied"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
		if !errors.Is(err, cause) {
			t.Error("WriteError should unwrap to its cause")
		}
	})

	t.Run("matches ErrWrite", func(t *testing.T) {
		if !errors.Is(&WriteError{}, ErrWrite) {
			t.Error("WriteError should match ErrWrite")
		}
	})
}
