package engine

import (
	"context"
	"fmt"
)

// StreakResult reports the outcome of the once-per-day login check.
type StreakResult struct {
	Streak        int
	Counted       bool // false when today was already processed
	Extended      bool // true when the streak continued from yesterday
	PointsAwarded int
	Balance       int
	Unlocked      []Reward
}

// CheckDailyLogin runs the daily-login state machine. Comparing the stored
// last-login date L to today T:
//
//	L == T      -> no change, no side effects
//	L == T - 1d -> streak + 1
//	otherwise   -> streak resets to 1 (absent, gap, or clock moved back)
//
// On any counting transition it persists the streak and L := T, credits the
// login bonus, notifies, and grants any streak badge whose milestone equals
// the new count.
func (s *Service) CheckDailyLogin(ctx context.Context) (*StreakResult, error) {
	today := s.today()

	last, haveLast, err := s.profile.LastLogin(ctx)
	if err != nil {
		return nil, err
	}
	streak, err := s.profile.Streak(ctx)
	if err != nil {
		return nil, err
	}

	if haveLast && last.Equal(today) {
		balance, err := s.profile.Points(ctx)
		if err != nil {
			return nil, err
		}
		return &StreakResult{Streak: streak, Balance: balance}, nil
	}

	extended := haveLast && last.Equal(today.AddDate(0, 0, -1))
	if extended {
		streak++
	} else {
		streak = 1
	}

	if err := s.profile.SetStreak(ctx, streak); err != nil {
		return nil, err
	}
	if err := s.profile.SetLastLogin(ctx, today); err != nil {
		return nil, err
	}

	balance, err := s.Earn(ctx, LoginBonusPoints)
	if err != nil {
		return nil, err
	}
	// The streak check itself is the once-per-day gate; the marker is
	// written so the persisted layout stays uniform across bonus kinds.
	if err := s.profile.MarkDailyBonus(ctx, BonusLogin, today); err != nil {
		return nil, err
	}
	s.notifier.Notify("Daily login", fmt.Sprintf("Day %d of your streak, +%d points!", streak, LoginBonusPoints))

	var unlocked []Reward
	for _, reward := range Catalog() {
		if reward.Type != RewardStreak || reward.StreakRequired != streak {
			continue
		}
		granted, err := s.grantReward(ctx, reward)
		if err != nil {
			return nil, err
		}
		if granted {
			unlocked = append(unlocked, reward)
		}
	}

	return &StreakResult{
		Streak:        streak,
		Counted:       true,
		Extended:      extended,
		PointsAwarded: LoginBonusPoints,
		Balance:       balance,
		Unlocked:      unlocked,
	}, nil
}

// Streak returns the stored streak count without running the daily check.
func (s *Service) Streak(ctx context.Context) (int, error) {
	return s.profile.Streak(ctx)
}
