package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"loja_xpto/internal/domain/entities"
)

func TestPendingOrderFileRepository_Roundtrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPendingOrderFileRepository(t.TempDir())

	if _, ok := repo.Read(ctx, "u1"); ok {
		t.Fatal("expected no record initially")
	}

	repo.Save(ctx, "u1", entities.PendingOrder{ID: "o1", Total: 30})
	rec, ok := repo.Read(ctx, "u1")
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.ID != "o1" || rec.Total != 30 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// Records are per user.
	if _, ok := repo.Read(ctx, "u2"); ok {
		t.Fatal("expected no record for another user")
	}

	repo.Clear(ctx, "u1")
	if _, ok := repo.Read(ctx, "u1"); ok {
		t.Fatal("expected record gone after clear")
	}

	// Clearing twice must stay silent.
	repo.Clear(ctx, "u1")
}

func TestPendingOrderFileRepository_CorruptRecordIsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewPendingOrderFileRepository(dir)

	if err := os.WriteFile(filepath.Join(dir, "u1.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if _, ok := repo.Read(ctx, "u1"); ok {
		t.Fatal("corrupt record must read as absent")
	}
}

func TestPendingOrderFileRepository_ZeroRecordClears(t *testing.T) {
	ctx := context.Background()
	repo := NewPendingOrderFileRepository(t.TempDir())

	repo.Save(ctx, "u1", entities.PendingOrder{ID: "o1", Total: 30})
	repo.Save(ctx, "u1", entities.PendingOrder{})

	if _, ok := repo.Read(ctx, "u1"); ok {
		t.Fatal("saving a zero record must clear the slot")
	}
}

func TestPendingOrderFileRepository_EmptyIDReadsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewPendingOrderFileRepository(dir)

	if err := os.WriteFile(filepath.Join(dir, "u1.json"), []byte(`{"order_id": "", "total": 0}`), 0o644); err != nil {
		t.Fatalf("seed empty record: %v", err)
	}

	if _, ok := repo.Read(ctx, "u1"); ok {
		t.Fatal("an id-less record carries no pending order")
	}
}
