package storage

import (
	"context"
	"strconv"
	"time"
)

// ProfileRepo owns the scalar profile entries: nickname, points balance,
// streak counter, last login date and the daily bonus markers.
//
// Malformed stored values read as the entity default rather than failing;
// a corrupt entry resets on the next write.
type ProfileRepo struct {
	kv Store
}

func NewProfileRepo(kv Store) *ProfileRepo {
	return &ProfileRepo{kv: kv}
}

func (r *ProfileRepo) Nickname(ctx context.Context) (string, error) {
	v, _, err := r.kv.Get(ctx, KeyNickname)
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *ProfileRepo) SetNickname(ctx context.Context, name string) error {
	return r.kv.Set(ctx, KeyNickname, name)
}

func (r *ProfileRepo) Points(ctx context.Context) (int, error) {
	return r.nonNegativeInt(ctx, KeyPoints)
}

func (r *ProfileRepo) SetPoints(ctx context.Context, n int) error {
	return r.kv.Set(ctx, KeyPoints, strconv.Itoa(n))
}

func (r *ProfileRepo) Streak(ctx context.Context) (int, error) {
	return r.nonNegativeInt(ctx, KeyStreak)
}

func (r *ProfileRepo) SetStreak(ctx context.Context, n int) error {
	return r.kv.Set(ctx, KeyStreak, strconv.Itoa(n))
}

// LastLogin returns the stored last-login calendar date. ok is false when
// the date is absent or does not parse.
func (r *ProfileRepo) LastLogin(ctx context.Context) (time.Time, bool, error) {
	v, ok, err := r.kv.Get(ctx, KeyLastLoginDate)
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, nil
	}
	day, err := time.ParseInLocation(DateLayout, v, time.Local)
	if err != nil {
		return time.Time{}, false, nil
	}
	return day, true, nil
}

func (r *ProfileRepo) SetLastLogin(ctx context.Context, day time.Time) error {
	return r.kv.Set(ctx, KeyLastLoginDate, day.Format(DateLayout))
}

func (r *ProfileRepo) DailyBonusGranted(ctx context.Context, kind string, day time.Time) (bool, error) {
	_, ok, err := r.kv.Get(ctx, DailyBonusKey(kind, day))
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *ProfileRepo) MarkDailyBonus(ctx context.Context, kind string, day time.Time) error {
	return r.kv.Set(ctx, DailyBonusKey(kind, day), "1")
}

func (r *ProfileRepo) nonNegativeInt(ctx context.Context, key string) (int, error) {
	v, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}
