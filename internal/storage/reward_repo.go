package storage

import "context"

// RewardRepo owns the set of unlocked reward IDs. Membership is monotonic:
// callers only ever append; nothing removes an owned reward.
type RewardRepo struct {
	kv Store
}

func NewRewardRepo(kv Store) *RewardRepo {
	return &RewardRepo{kv: kv}
}

func (r *RewardRepo) Owned(ctx context.Context) ([]string, error) {
	return getList[string](ctx, r.kv, KeyOwnedRewards)
}

func (r *RewardRepo) Save(ctx context.Context, owned []string) error {
	return setList(ctx, r.kv, KeyOwnedRewards, owned)
}
