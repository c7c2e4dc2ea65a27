package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/theyard/fanpass/internal/core/domain"
)

func testPass(anonID, id string) *domain.Pass {
	return &domain.Pass{
		ID:         id,
		AnonID:     anonID,
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		Phone:      "+2348000000000",
		Category:   domain.CategoryAngel,
		YearJoined: 2026,
		CreatedAt:  time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestPassRepository_SaveAndFind(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()

	if _, err := repo.FindByAnonID(ctx, "device-1"); !errors.Is(err, domain.ErrPassNotFound) {
		t.Fatalf("expected ErrPassNotFound, got %v", err)
	}

	want := testPass("device-1", "YARD-26-0A1B2C3D4E5F")
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.FindByAnonID(ctx, "device-1")
	if err != nil {
		t.Fatalf("FindByAnonID returned error: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || got.Category != want.Category {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// The caller gets a copy; mutating it must not touch the store.
	got.Name = "Mutated"
	again, err := repo.FindByAnonID(ctx, "device-1")
	if err != nil {
		t.Fatalf("FindByAnonID returned error: %v", err)
	}
	if again.Name != "Ada Obi" {
		t.Fatalf("stored record was mutated through a returned copy")
	}
}

func TestPassRepository_LastWriteWins(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, testPass("device-1", "YARD-26-AAAAAAAAAAAA")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Save(ctx, testPass("device-1", "YARD-26-BBBBBBBBBBBB")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.FindByAnonID(ctx, "device-1")
	if err != nil {
		t.Fatalf("FindByAnonID returned error: %v", err)
	}
	if got.ID != "YARD-26-BBBBBBBBBBBB" {
		t.Fatalf("expected the later write, got %s", got.ID)
	}

	passes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(passes) != 1 {
		t.Fatalf("one device means one pass, got %d", len(passes))
	}
}

func TestPassRepository_List(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()

	for _, anon := range []string{"a", "b", "c"} {
		if err := repo.Save(ctx, testPass(anon, "YARD-26-"+anon+"00000000000")); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	passes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(passes) != 3 {
		t.Fatalf("expected 3 passes, got %d", len(passes))
	}
}

func TestCMSRepository_RoundTrip(t *testing.T) {
	repo := NewCMSRepository()
	ctx := context.Background()

	if _, err := repo.Load(ctx); !errors.Is(err, domain.ErrCMSNotFound) {
		t.Fatalf("expected ErrCMSNotFound, got %v", err)
	}

	doc := domain.DefaultCMS()
	doc.Version = 4
	if err := repo.Store(ctx, doc); err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.Version != 4 {
		t.Fatalf("expected version 4, got %d", got.Version)
	}
	if len(got.Tour) != len(doc.Tour) {
		t.Fatalf("tour entries lost in round trip")
	}

	// Copies out, not aliases.
	got.Tour[0].City = "Mutated"
	again, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if again.Tour[0].City == "Mutated" {
		t.Fatalf("stored document was mutated through a returned copy")
	}
}
