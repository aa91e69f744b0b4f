package dto_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/itemstore/pkg/auth"
	"github.com/ghuser/itemstore/services/item/application/dto"
)

func TestToItem_anonymousActor(t *testing.T) {
	d := dto.ItemDTO{Name: "ItemDTO", Description: "Some Test Item"}

	item, err := dto.ToItem(d, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.CreatedBy != nil {
		t.Errorf("expected nil CreatedBy, got %q", *item.CreatedBy)
	}
	if item.LastChangedBy != nil {
		t.Errorf("expected nil LastChangedBy, got %q", *item.LastChangedBy)
	}
}

func TestToItem_namedActor(t *testing.T) {
	d := dto.ItemDTO{Name: "ItemDTO", Description: "Some Test Item"}

	item, err := dto.ToItem(d, &auth.Principal{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.CreatedBy == nil || *item.CreatedBy != "u1" {
		t.Errorf("expected CreatedBy u1, got %v", item.CreatedBy)
	}
	if item.LastChangedBy == nil || *item.LastChangedBy != "u1" {
		t.Errorf("expected LastChangedBy u1, got %v", item.LastChangedBy)
	}
}

func TestToItem_stampsAuditDefaults(t *testing.T) {
	item, err := dto.ToItem(dto.ItemDTO{Name: "a", Description: "b"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.IsActive {
		t.Error("expected IsActive true by default")
	}
	if item.IsArchived {
		t.Error("expected IsArchived false by default")
	}
	if item.CreateDateTime.IsZero() || item.LastChangedDateTime.IsZero() {
		t.Error("expected both timestamps stamped")
	}
}

func TestToItem_leavesIDUnset(t *testing.T) {
	// IDs are generated by the database; conversion alone must not mint one.
	item, err := dto.ToItem(dto.ItemDTO{Name: "a", Description: "b"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != uuid.Nil {
		t.Errorf("expected zero ID before persistence, got %v", item.ID)
	}
}

func TestToItem_rejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		d    dto.ItemDTO
	}{
		{"empty name", dto.ItemDTO{Name: "", Description: "x"}},
		{"empty description", dto.ItemDTO{Name: "x", Description: ""}},
		{"whitespace name", dto.ItemDTO{Name: "   ", Description: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := dto.ToItem(tt.d, nil); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestRoundTrip_preservesNameAndDescription(t *testing.T) {
	in := dto.ItemDTO{Name: "ItemDTO", Description: "Some Test Item"}

	item, err := dto.ToItem(in, &auth.Principal{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := dto.FromItem(item)

	if out.Name != in.Name {
		t.Errorf("name not preserved: %q", out.Name)
	}
	if out.Description != in.Description {
		t.Errorf("description not preserved: %q", out.Description)
	}
}
