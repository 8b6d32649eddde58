package engine

import (
	"context"
	"strings"
)

// ProfileStats aggregates everything the profile screen shows.
type ProfileStats struct {
	Nickname       string
	Balance        int
	Streak         int
	Badges         int
	Favorites      int
	Notes          int
	Participations int
	ByCategory     map[string]int
}

func (s *Service) Nickname(ctx context.Context) (string, error) {
	return s.profile.Nickname(ctx)
}

func (s *Service) SetNickname(ctx context.Context, name string) error {
	return s.profile.SetNickname(ctx, strings.TrimSpace(name))
}

// Stats reads the profile counters in one pass.
func (s *Service) Stats(ctx context.Context) (*ProfileStats, error) {
	stats := &ProfileStats{ByCategory: map[string]int{}}

	var err error
	if stats.Nickname, err = s.profile.Nickname(ctx); err != nil {
		return nil, err
	}
	if stats.Balance, err = s.profile.Points(ctx); err != nil {
		return nil, err
	}
	if stats.Streak, err = s.profile.Streak(ctx); err != nil {
		return nil, err
	}

	owned, err := s.rewards.Owned(ctx)
	if err != nil {
		return nil, err
	}
	stats.Badges = len(owned)

	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Favorites = len(favorites)

	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Notes = len(notes)

	participations, err := s.participations.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Participations = len(participations)
	for _, p := range participations {
		category := p.Category
		if category == "" {
			category = "Other"
		}
		stats.ByCategory[category]++
	}

	return stats, nil
}
