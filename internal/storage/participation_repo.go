package storage

import "context"

// ParticipationRepo owns the joined-event records, stored newest-first and
// unique per event ID.
type ParticipationRepo struct {
	kv Store
}

func NewParticipationRepo(kv Store) *ParticipationRepo {
	return &ParticipationRepo{kv: kv}
}

func (r *ParticipationRepo) List(ctx context.Context) ([]Participation, error) {
	return getList[Participation](ctx, r.kv, KeyParticipations)
}

func (r *ParticipationRepo) Save(ctx context.Context, participations []Participation) error {
	return setList(ctx, r.kv, KeyParticipations, participations)
}
