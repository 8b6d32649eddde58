package storage

import (
	"fmt"
	"time"
)

// Persisted key layout. Kept identical to the mobile app's AsyncStorage
// layout so existing data maps one-to-one.
const (
	KeyNickname       = "nickname"
	KeyPoints         = "points"
	KeyStreak         = "streak"
	KeyLastLoginDate  = "lastLoginDate"
	KeyFavorites      = "favorites"
	KeyNotes          = "notes"
	KeyParticipations = "participations"
	KeyOwnedRewards   = "ownedRewards"
)

// DateLayout is the calendar-date form used for lastLoginDate and daily
// bonus keys. Calendar dates, not timestamps: day boundaries follow the
// device's local date.
const DateLayout = "2006-01-02"

// DailyBonusKey returns the presence-marker key for a (bonus kind, day)
// pair, e.g. "daily_note_point_2026-08-31".
func DailyBonusKey(kind string, day time.Time) string {
	return fmt.Sprintf("daily_%s_point_%s", kind, day.Format(DateLayout))
}
