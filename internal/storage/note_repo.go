package storage

import "context"

// NoteRepo owns the notes collection, stored newest-first.
type NoteRepo struct {
	kv Store
}

func NewNoteRepo(kv Store) *NoteRepo {
	return &NoteRepo{kv: kv}
}

func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	return getList[Note](ctx, r.kv, KeyNotes)
}

func (r *NoteRepo) Save(ctx context.Context, notes []Note) error {
	return setList(ctx, r.kv, KeyNotes, notes)
}
