package engine

import (
	"time"

	"github.com/busrayesinn/eventra/internal/storage"
)

// Point values awarded by the gamification rules. Favorite and note credits
// are capped at one per calendar day; the participation credit is one-time
// per event by construction.
const (
	LoginBonusPoints         = 10
	FavoriteBonusPoints      = 5
	NoteBonusPoints          = 5
	ParticipationBonusPoints = 20
)

// Service owns the gamification rules over the key-value store: the points
// ledger, the daily streak, the favorite/note/participation collections and
// the reward registry. The app never issues two mutating operations
// concurrently, so each operation runs read-modify-write without locking.
type Service struct {
	profile        *storage.ProfileRepo
	favorites      *storage.FavoriteRepo
	notes          *storage.NoteRepo
	participations *storage.ParticipationRepo
	rewards        *storage.RewardRepo

	notifier Notifier
	now      func() time.Time
}

func NewService(kv storage.Store, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		profile:        storage.NewProfileRepo(kv),
		favorites:      storage.NewFavoriteRepo(kv),
		notes:          storage.NewNoteRepo(kv),
		participations: storage.NewParticipationRepo(kv),
		rewards:        storage.NewRewardRepo(kv),
		notifier:       notifier,
		now:            time.Now,
	}
}

func (s *Service) ProfileRepo() *storage.ProfileRepo { return s.profile }

// today returns the local calendar date. Day boundaries follow the device
// clock and timezone; a timezone change can shift streak behavior, which is
// a documented limitation of calendar-date bookkeeping.
func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
