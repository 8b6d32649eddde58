package engine

import (
	"context"
	"fmt"
)

// RewardView is a catalog entry with its derived display state. Lock state
// is computed from the balance and streak on every read, never stored.
type RewardView struct {
	Reward
	Owned  bool
	Locked bool
}

// OwnedRewards returns the unlocked reward IDs.
func (s *Service) OwnedRewards(ctx context.Context) ([]string, error) {
	return s.rewards.Owned(ctx)
}

// IsOwned reports whether the reward has been unlocked.
func (s *Service) IsOwned(ctx context.Context, rewardID string) (bool, error) {
	owned, err := s.rewards.Owned(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range owned {
		if id == rewardID {
			return true, nil
		}
	}
	return false, nil
}

// Purchase unlocks a shop reward by spending its cost. Streak badges cannot
// be bought. The owned set only ever grows; buying an owned reward fails
// without touching the balance.
func (s *Service) Purchase(ctx context.Context, rewardID string) (*Reward, error) {
	reward, ok := RewardByID(rewardID)
	if !ok {
		return nil, fmt.Errorf("purchase %q: %w", rewardID, ErrRewardNotFound)
	}
	if reward.Type != RewardShop {
		return nil, fmt.Errorf("purchase %q: %w", rewardID, ErrNotPurchasable)
	}
	owned, err := s.IsOwned(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, fmt.Errorf("purchase %q: %w", rewardID, ErrAlreadyOwned)
	}

	_, ok, err = s.Spend(ctx, reward.Cost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("purchase %q: %w", rewardID, ErrInsufficientPoints)
	}

	ids, err := s.rewards.Owned(ctx)
	if err != nil {
		return nil, err
	}
	ids = append(ids, reward.ID)
	if err := s.rewards.Save(ctx, ids); err != nil {
		return nil, err
	}
	s.notifier.Notify("Reward unlocked", fmt.Sprintf("%s is yours, enjoy!", reward.Title))
	return &reward, nil
}

// grantReward adds the reward to the owned set if absent, notifying once.
// Granting an owned reward is an idempotent no-op.
func (s *Service) grantReward(ctx context.Context, reward Reward) (bool, error) {
	owned, err := s.IsOwned(ctx, reward.ID)
	if err != nil {
		return false, err
	}
	if owned {
		return false, nil
	}
	ids, err := s.rewards.Owned(ctx)
	if err != nil {
		return false, err
	}
	ids = append(ids, reward.ID)
	if err := s.rewards.Save(ctx, ids); err != nil {
		return false, err
	}
	s.notifier.Notify("Badge unlocked", fmt.Sprintf("You earned %s!", reward.Title))
	return true, nil
}

// RewardViews returns the catalog with ownership and lock state derived
// from the current balance and streak.
func (s *Service) RewardViews(ctx context.Context) ([]RewardView, error) {
	ownedIDs, err := s.rewards.Owned(ctx)
	if err != nil {
		return nil, err
	}
	ownedSet := make(map[string]bool, len(ownedIDs))
	for _, id := range ownedIDs {
		ownedSet[id] = true
	}
	balance, err := s.profile.Points(ctx)
	if err != nil {
		return nil, err
	}
	streak, err := s.profile.Streak(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RewardView, 0, len(rewardCatalog))
	for _, r := range rewardCatalog {
		v := RewardView{Reward: r, Owned: ownedSet[r.ID]}
		if !v.Owned {
			switch r.Type {
			case RewardShop:
				v.Locked = balance < r.Cost
			case RewardStreak:
				v.Locked = streak < r.StreakRequired
			}
		}
		views = append(views, v)
	}
	return views, nil
}
