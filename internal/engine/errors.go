package engine

import "errors"

var (
	// ErrRewardNotFound reports a reward ID absent from the catalog.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrNotPurchasable reports a purchase attempt on a streak badge.
	ErrNotPurchasable = errors.New("reward is not purchasable")
	// ErrAlreadyOwned reports a purchase of an already-unlocked reward.
	ErrAlreadyOwned = errors.New("reward already owned")
	// ErrInsufficientPoints reports a purchase the balance cannot cover.
	ErrInsufficientPoints = errors.New("not enough points")
	// ErrInvalidAmount reports a non-positive ledger amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)
