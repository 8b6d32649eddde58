package engine

import "context"

// Daily bonus kinds. Each kind earns at most one ledger credit per calendar
// day, tracked by a presence marker keyed on (kind, date).
const (
	BonusLogin    = "login"
	BonusFavorite = "favorite"
	BonusNote     = "note"
)

// grantDailyBonus credits the ledger once per kind per calendar day.
// granted is false when today's marker for the kind is already set.
func (s *Service) grantDailyBonus(ctx context.Context, kind string, points int) (granted bool, balance int, err error) {
	today := s.today()
	done, err := s.profile.DailyBonusGranted(ctx, kind, today)
	if err != nil {
		return false, 0, err
	}
	if done {
		balance, err = s.profile.Points(ctx)
		return false, balance, err
	}
	balance, err = s.Earn(ctx, points)
	if err != nil {
		return false, 0, err
	}
	if err := s.profile.MarkDailyBonus(ctx, kind, today); err != nil {
		return false, 0, err
	}
	return true, balance, nil
}
