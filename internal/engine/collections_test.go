package engine

import (
	"context"
	"testing"

	"github.com/busrayesinn/eventra/internal/storage"
)

func TestToggleFavoriteRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	event := storage.Event{ID: 42, Name: "Jazz Night", Category: "Music"}

	res, err := svc.ToggleFavorite(ctx, event)
	if err != nil {
		t.Fatalf("toggle add: %v", err)
	}
	if !res.Added || len(res.Favorites) != 1 {
		t.Fatalf("added=%v favorites=%d, want added with 1 favorite", res.Added, len(res.Favorites))
	}
	if !res.BonusAwarded || res.Balance != FavoriteBonusPoints {
		t.Fatalf("bonus=%v balance=%d, want first favorite of the day to earn %d", res.BonusAwarded, res.Balance, FavoriteBonusPoints)
	}

	res, err = svc.ToggleFavorite(ctx, event)
	if err != nil {
		t.Fatalf("toggle remove: %v", err)
	}
	if res.Added || len(res.Favorites) != 0 {
		t.Fatalf("added=%v favorites=%d, want removal back to empty", res.Added, len(res.Favorites))
	}
	if res.BonusAwarded {
		t.Fatalf("removal awarded a bonus")
	}
	if res.Balance != FavoriteBonusPoints {
		t.Fatalf("balance=%d, want unchanged %d", res.Balance, FavoriteBonusPoints)
	}
}

func TestFavoriteBonusOncePerDay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.ToggleFavorite(ctx, storage.Event{ID: 1, Name: "A"})
	if err != nil {
		t.Fatalf("toggle 1: %v", err)
	}
	if !first.BonusAwarded {
		t.Fatalf("first favorite earned nothing")
	}

	second, err := svc.ToggleFavorite(ctx, storage.Event{ID: 2, Name: "B"})
	if err != nil {
		t.Fatalf("toggle 2: %v", err)
	}
	if second.BonusAwarded {
		t.Fatalf("second favorite same day earned a bonus")
	}
	if second.Balance != FavoriteBonusPoints {
		t.Fatalf("balance=%d, want %d", second.Balance, FavoriteBonusPoints)
	}

	// The cap is per calendar day, not forever.
	setDay(svc, 1)
	third, err := svc.ToggleFavorite(ctx, storage.Event{ID: 3, Name: "C"})
	if err != nil {
		t.Fatalf("toggle 3: %v", err)
	}
	if !third.BonusAwarded {
		t.Fatalf("next-day favorite earned nothing")
	}
}

func TestAddNoteDailyBonusIdempotence(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddNote(ctx, storage.Note{ID: "n1", Title: "one", CreatedAt: testDay})
	if err != nil {
		t.Fatalf("add n1: %v", err)
	}
	if !first.BonusAwarded || first.Balance != NoteBonusPoints {
		t.Fatalf("first note: bonus=%v balance=%d, want %d", first.BonusAwarded, first.Balance, NoteBonusPoints)
	}
	if !rec.contains("Note saved") {
		t.Fatalf("expected note notification, got %v", rec.messages)
	}

	second, err := svc.AddNote(ctx, storage.Note{ID: "n2", Title: "two", CreatedAt: testDay})
	if err != nil {
		t.Fatalf("add n2: %v", err)
	}
	if second.BonusAwarded {
		t.Fatalf("second note same day awarded a bonus")
	}

	third, err := svc.AddNote(ctx, storage.Note{ID: "n3", Title: "three", CreatedAt: testDay})
	if err != nil {
		t.Fatalf("add n3: %v", err)
	}
	if third.BonusAwarded || third.Balance != NoteBonusPoints {
		t.Fatalf("third note: bonus=%v balance=%d, want no extra points", third.BonusAwarded, third.Balance)
	}
	if len(third.Notes) != 3 {
		t.Fatalf("notes=%d, want all 3 stored", len(third.Notes))
	}
	// Newest-first insert order.
	if third.Notes[0].ID != "n3" || third.Notes[2].ID != "n1" {
		t.Fatalf("order=%s..%s, want n3..n1", third.Notes[0].ID, third.Notes[2].ID)
	}
}

func TestNoteBonusIndependentOfFavoriteBonus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ToggleFavorite(ctx, storage.Event{ID: 1, Name: "A"}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	res, err := svc.AddNote(ctx, storage.Note{ID: "n1", Title: "one"})
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	if !res.BonusAwarded {
		t.Fatalf("note bonus blocked by favorite bonus; kinds must be independent")
	}
	if res.Balance != FavoriteBonusPoints+NoteBonusPoints {
		t.Fatalf("balance=%d, want %d", res.Balance, FavoriteBonusPoints+NoteBonusPoints)
	}
}

func TestNotesPinnedFirstStableOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		if _, err := svc.AddNote(ctx, storage.Note{ID: id, Title: id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	// Stored order is d, c, b, a. Pin b then a.
	if _, err := svc.TogglePin(ctx, "b"); err != nil {
		t.Fatalf("pin b: %v", err)
	}
	if _, err := svc.TogglePin(ctx, "a"); err != nil {
		t.Fatalf("pin a: %v", err)
	}

	notes, err := svc.Notes(ctx)
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	got := make([]string, len(notes))
	for i, n := range notes {
		got[i] = n.ID
	}
	want := []string{"b", "a", "d", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("display order=%v, want %v", got, want)
		}
	}

	// Unpin restores plain stored order.
	if _, err := svc.TogglePin(ctx, "b"); err != nil {
		t.Fatalf("unpin b: %v", err)
	}
	notes, err = svc.Notes(ctx)
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if notes[0].ID != "a" || notes[1].ID != "d" {
		t.Fatalf("order after unpin=%s,%s, want a,d", notes[0].ID, notes[1].ID)
	}
}

func TestUpdateAndDeleteNote(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddNote(ctx, storage.Note{ID: "n1", Title: "draft", Body: "x"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	notes, err := svc.UpdateNote(ctx, storage.Note{ID: "n1", Title: "final", Body: "y"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if notes[0].Title != "final" || notes[0].Body != "y" {
		t.Fatalf("updated note=%+v, want replaced fields", notes[0])
	}

	// Unknown ID is a no-op.
	notes, err = svc.UpdateNote(ctx, storage.Note{ID: "ghost", Title: "?"})
	if err != nil {
		t.Fatalf("update ghost: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "final" {
		t.Fatalf("ghost update changed the list: %+v", notes)
	}

	notes, err = svc.DeleteNote(ctx, "n1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("notes after delete=%d, want 0", len(notes))
	}
}

func TestJoinIsIdempotentPerEvent(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()
	p := storage.Participation{EventID: 7, Name: "Open Mic", Category: "Music", JoinedAt: testDay}

	first, err := svc.Join(ctx, p)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if !first.Joined || first.Balance != ParticipationBonusPoints {
		t.Fatalf("first join: joined=%v balance=%d, want %d", first.Joined, first.Balance, ParticipationBonusPoints)
	}

	second, err := svc.Join(ctx, p)
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if second.Joined {
		t.Fatalf("duplicate join reported as joined")
	}
	if len(second.Participations) != 1 {
		t.Fatalf("participations=%d, want 1", len(second.Participations))
	}
	if second.Balance != ParticipationBonusPoints {
		t.Fatalf("balance=%d, want single credit %d", second.Balance, ParticipationBonusPoints)
	}
	if !rec.contains("Already joined") {
		t.Fatalf("expected duplicate-join notification, got %v", rec.messages)
	}
}

func TestJoinDifferentEventsBothCredit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Join(ctx, storage.Participation{EventID: 1, Name: "A"}); err != nil {
		t.Fatalf("join 1: %v", err)
	}
	res, err := svc.Join(ctx, storage.Participation{EventID: 2, Name: "B"})
	if err != nil {
		t.Fatalf("join 2: %v", err)
	}
	if res.Balance != 2*ParticipationBonusPoints {
		t.Fatalf("balance=%d, want %d (no daily cap on joins)", res.Balance, 2*ParticipationBonusPoints)
	}
}
