package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewItem(t *testing.T) {
	name := ItemName("Test Item")

	t.Run("leaves ID zero until persisted", func(t *testing.T) {
		item, err := NewItem(name, "desc", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != uuid.Nil {
			t.Fatalf("expected zero ID, got %v", item.ID)
		}
	})

	t.Run("sets Name and Description", func(t *testing.T) {
		item, err := NewItem(name, "desc", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != name {
			t.Fatalf("expected Name %v, got %v", name, item.Name)
		}
		if item.Description != "desc" {
			t.Fatalf("expected Description desc, got %q", item.Description)
		}
	})

	t.Run("stamps audit timestamps to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewItem(name, "desc", nil)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreateDateTime.Before(before) || item.CreateDateTime.After(after) {
			t.Fatalf("CreateDateTime %v not between %v and %v", item.CreateDateTime, before, after)
		}
		if !item.CreateDateTime.Equal(item.LastChangedDateTime) {
			t.Fatal("expected both timestamps equal at creation")
		}
	})

	t.Run("attributes actor to both audit principals", func(t *testing.T) {
		actor := "u1"
		item, err := NewItem(name, "desc", &actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreatedBy == nil || *item.CreatedBy != "u1" {
			t.Fatalf("expected CreatedBy u1, got %v", item.CreatedBy)
		}
		if item.LastChangedBy == nil || *item.LastChangedBy != "u1" {
			t.Fatalf("expected LastChangedBy u1, got %v", item.LastChangedBy)
		}
	})

	t.Run("empty description returns error", func(t *testing.T) {
		if _, err := NewItem(name, "", nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("oversized description returns error", func(t *testing.T) {
		if _, err := NewItem(name, strings.Repeat("x", 2001), nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestAudit_Touch(t *testing.T) {
	actor := "creator"
	a := NewAudit(&actor)
	created := a.CreateDateTime

	time.Sleep(time.Millisecond)
	editor := "editor"
	a.Touch(&editor)

	if !a.CreateDateTime.Equal(created) {
		t.Fatal("Touch must not move CreateDateTime")
	}
	if a.CreatedBy == nil || *a.CreatedBy != "creator" {
		t.Fatal("Touch must not change CreatedBy")
	}
	if a.LastChangedBy == nil || *a.LastChangedBy != "editor" {
		t.Fatalf("expected LastChangedBy editor, got %v", a.LastChangedBy)
	}
	if !a.LastChangedDateTime.After(created) {
		t.Fatal("expected LastChangedDateTime to advance")
	}
}
