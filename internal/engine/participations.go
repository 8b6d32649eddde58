package engine

import (
	"context"
	"fmt"

	"github.com/busrayesinn/eventra/internal/storage"
)

// JoinResult reports a join outcome.
type JoinResult struct {
	Participations []storage.Participation
	Joined         bool // false when the event was already joined
	PointsAwarded  int
	Balance        int
}

// Participations returns the joined-event records.
func (s *Service) Participations(ctx context.Context) ([]storage.Participation, error) {
	return s.participations.List(ctx)
}

// Join records participation in an event. Joining the same event twice is a
// no-op communicated as a notification, not an error. A first join credits
// the participation bonus unconditionally; uniqueness on the event ID makes
// it one-time per event without a daily cap.
func (s *Service) Join(ctx context.Context, p storage.Participation) (*JoinResult, error) {
	participations, err := s.participations.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range participations {
		if existing.EventID == p.EventID {
			balance, err := s.profile.Points(ctx)
			if err != nil {
				return nil, err
			}
			s.notifier.Notify("Already joined", "You are already in this event.")
			return &JoinResult{Participations: participations, Balance: balance}, nil
		}
	}

	participations = append([]storage.Participation{p}, participations...)
	if err := s.participations.Save(ctx, participations); err != nil {
		return nil, err
	}
	balance, err := s.Earn(ctx, ParticipationBonusPoints)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("See you there!", fmt.Sprintf("+%d points for joining %s.", ParticipationBonusPoints, p.Name))

	return &JoinResult{
		Participations: participations,
		Joined:         true,
		PointsAwarded:  ParticipationBonusPoints,
		Balance:        balance,
	}, nil
}
