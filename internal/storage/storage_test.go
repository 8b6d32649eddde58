package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv, path
}

func TestKVRoundTrip(t *testing.T) {
	kv, _ := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || v != "v1" {
		t.Fatalf("get=%q ok=%v err=%v, want v1", v, ok, err)
	}

	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = kv.Get(ctx, "k")
	if v != "v2" {
		t.Fatalf("get after overwrite=%q, want v2", v)
	}

	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("key present after remove")
	}
}

func TestKVDurableAcrossReopen(t *testing.T) {
	ctx := context.Background()
	kv, path := newTestStore(t)

	if err := kv.Set(ctx, "points", "40"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, "points")
	if err != nil || !ok || v != "40" {
		t.Fatalf("get after reopen=%q ok=%v err=%v, want 40", v, ok, err)
	}
}

func TestProfileDefaults(t *testing.T) {
	kv := NewMemStore()
	repo := NewProfileRepo(kv)
	ctx := context.Background()

	if n, err := repo.Points(ctx); err != nil || n != 0 {
		t.Fatalf("points=%d err=%v, want 0", n, err)
	}
	if n, err := repo.Streak(ctx); err != nil || n != 0 {
		t.Fatalf("streak=%d err=%v, want 0", n, err)
	}
	if name, err := repo.Nickname(ctx); err != nil || name != "" {
		t.Fatalf("nickname=%q err=%v, want empty", name, err)
	}
	if _, ok, err := repo.LastLogin(ctx); err != nil || ok {
		t.Fatalf("last login ok=%v err=%v, want absent", ok, err)
	}
}

func TestProfileToleratesMalformedValues(t *testing.T) {
	kv := NewMemStore()
	repo := NewProfileRepo(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, KeyPoints, "not-a-number"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.Set(ctx, KeyStreak, "-3"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.Set(ctx, KeyLastLoginDate, "yesterdayish"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if n, err := repo.Points(ctx); err != nil || n != 0 {
		t.Fatalf("corrupt points read as %d err=%v, want default 0", n, err)
	}
	if n, err := repo.Streak(ctx); err != nil || n != 0 {
		t.Fatalf("negative streak read as %d err=%v, want default 0", n, err)
	}
	if _, ok, err := repo.LastLogin(ctx); err != nil || ok {
		t.Fatalf("corrupt date ok=%v err=%v, want absent", ok, err)
	}
}

func TestCollectionToleratesCorruption(t *testing.T) {
	kv := NewMemStore()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyNotes, "{{{ not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	notes, err := NewNoteRepo(kv).List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("corrupt notes read as %d entries, want reset to empty", len(notes))
	}
}

func TestNoteRoundTrip(t *testing.T) {
	kv := NewMemStore()
	repo := NewNoteRepo(kv)
	ctx := context.Background()

	eventID := int64(9)
	in := []Note{{
		ID:        "n1",
		Title:     "Doors open early",
		Body:      "Get there by seven.",
		Pinned:    true,
		EventID:   &eventID,
		EventName: "Jazz Night",
		CreatedAt: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
	}}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].ID != "n1" || !out[0].Pinned || out[0].EventID == nil || *out[0].EventID != 9 {
		t.Fatalf("round trip=%+v, want stored note back", out)
	}
}

func TestDailyBonusKeyFormat(t *testing.T) {
	day := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.Local)
	got := DailyBonusKey("note", day)
	if got != "daily_note_point_2026-08-31" {
		t.Fatalf("key=%q, want daily_note_point_2026-08-31", got)
	}
}

func TestDailyBonusMarker(t *testing.T) {
	repo := NewProfileRepo(NewMemStore())
	ctx := context.Background()
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

	granted, err := repo.DailyBonusGranted(ctx, "favorite", day)
	if err != nil || granted {
		t.Fatalf("granted=%v err=%v, want unset", granted, err)
	}
	if err := repo.MarkDailyBonus(ctx, "favorite", day); err != nil {
		t.Fatalf("mark: %v", err)
	}
	granted, err = repo.DailyBonusGranted(ctx, "favorite", day)
	if err != nil || !granted {
		t.Fatalf("granted=%v err=%v, want set", granted, err)
	}

	// Kinds and days are disjoint namespaces.
	if granted, _ := repo.DailyBonusGranted(ctx, "note", day); granted {
		t.Fatalf("note marker set by favorite marker")
	}
	if granted, _ := repo.DailyBonusGranted(ctx, "favorite", day.AddDate(0, 0, 1)); granted {
		t.Fatalf("next-day marker set by today's marker")
	}
}
