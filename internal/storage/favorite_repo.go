package storage

import "context"

// FavoriteRepo owns the favorited-event snapshots, unique per event ID.
type FavoriteRepo struct {
	kv Store
}

func NewFavoriteRepo(kv Store) *FavoriteRepo {
	return &FavoriteRepo{kv: kv}
}

func (r *FavoriteRepo) List(ctx context.Context) ([]Event, error) {
	return getList[Event](ctx, r.kv, KeyFavorites)
}

func (r *FavoriteRepo) Save(ctx context.Context, favorites []Event) error {
	return setList(ctx, r.kv, KeyFavorites, favorites)
}
