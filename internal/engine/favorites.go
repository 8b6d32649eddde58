package engine

import (
	"context"
	"fmt"

	"github.com/busrayesinn/eventra/internal/storage"
)

// FavoriteResult reports a toggle outcome.
type FavoriteResult struct {
	Favorites     []storage.Event
	Added         bool // false when the event was removed
	BonusAwarded  bool
	PointsAwarded int
	Balance       int
}

// Favorites returns the favorited event snapshots.
func (s *Service) Favorites(ctx context.Context) ([]storage.Event, error) {
	return s.favorites.List(ctx)
}

// ToggleFavorite removes the event if present, otherwise appends it. Adding
// earns the favorite bonus at most once per calendar day; removing never
// earns anything.
func (s *Service) ToggleFavorite(ctx context.Context, event storage.Event) (*FavoriteResult, error) {
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return nil, err
	}

	exists := false
	filtered := favorites[:0:0]
	for _, f := range favorites {
		if f.ID == event.ID {
			exists = true
			continue
		}
		filtered = append(filtered, f)
	}

	res := &FavoriteResult{Added: !exists}
	if exists {
		favorites = filtered
	} else {
		favorites = append(favorites, event)
	}
	if err := s.favorites.Save(ctx, favorites); err != nil {
		return nil, err
	}
	res.Favorites = favorites

	if !exists {
		granted, balance, err := s.grantDailyBonus(ctx, BonusFavorite, FavoriteBonusPoints)
		if err != nil {
			return nil, err
		}
		res.BonusAwarded = granted
		res.Balance = balance
		if granted {
			res.PointsAwarded = FavoriteBonusPoints
			s.notifier.Notify("Favorite saved", fmt.Sprintf("+%d points for today's first favorite!", FavoriteBonusPoints))
		}
	} else {
		balance, err := s.profile.Points(ctx)
		if err != nil {
			return nil, err
		}
		res.Balance = balance
	}

	return res, nil
}
