package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/busrayesinn/eventra/internal/storage"
)

// NoteResult reports an add outcome.
type NoteResult struct {
	Notes         []storage.Note
	BonusAwarded  bool
	PointsAwarded int
	Balance       int
}

// Notes returns the notes in display order: pinned first, otherwise the
// stored newest-first order (stable).
func (s *Service) Notes(ctx context.Context) ([]storage.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Pinned && !notes[j].Pinned
	})
	return notes, nil
}

// AddNote prepends the note and earns the note bonus at most once per
// calendar day. The note is stored either way; only the credit is capped.
func (s *Service) AddNote(ctx context.Context, note storage.Note) (*NoteResult, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	notes = append([]storage.Note{note}, notes...)
	if err := s.notes.Save(ctx, notes); err != nil {
		return nil, err
	}

	granted, balance, err := s.grantDailyBonus(ctx, BonusNote, NoteBonusPoints)
	if err != nil {
		return nil, err
	}
	res := &NoteResult{Notes: notes, BonusAwarded: granted, Balance: balance}
	if granted {
		res.PointsAwarded = NoteBonusPoints
		s.notifier.Notify("Note saved", fmt.Sprintf("+%d points for today's first note!", NoteBonusPoints))
	}
	return res, nil
}

// UpdateNote replaces the note with the same ID. Unknown IDs are a no-op.
func (s *Service) UpdateNote(ctx context.Context, note storage.Note) ([]storage.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == note.ID {
			notes[i] = note
		}
	}
	if err := s.notes.Save(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// DeleteNote removes the note with the given ID.
func (s *Service) DeleteNote(ctx context.Context, id string) ([]storage.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := notes[:0:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if err := s.notes.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// TogglePin flips the pinned flag of the note with the given ID.
func (s *Service) TogglePin(ctx context.Context, id string) ([]storage.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Pinned = !notes[i].Pinned
		}
	}
	if err := s.notes.Save(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}
