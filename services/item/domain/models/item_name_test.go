package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	t.Run("valid single character", func(t *testing.T) {
		n, err := NewItemName("a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "a" {
			t.Fatalf("expected %q, got %q", "a", n.String())
		}
	})

	t.Run("valid 255 characters", func(t *testing.T) {
		s := strings.Repeat("x", 255)
		n, err := NewItemName(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(n.String()) != 255 {
			t.Fatalf("expected string of length 255, got %d", len(n.String()))
		}
	})

	t.Run("valid normal name", func(t *testing.T) {
		n, err := NewItemName("Sample Item")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Sample Item" {
			t.Fatalf("expected %q, got %q", "Sample Item", n.String())
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := NewItemName(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("256 characters returns error", func(t *testing.T) {
		if _, err := NewItemName(strings.Repeat("x", 256)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace-only returns error", func(t *testing.T) {
		if _, err := NewItemName("   "); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("control characters return error", func(t *testing.T) {
		if _, err := NewItemName("bad\x00name"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
