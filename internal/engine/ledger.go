package engine

import "context"

// Balance returns the current points balance. An absent balance reads as
// zero.
func (s *Service) Balance(ctx context.Context) (int, error) {
	return s.profile.Points(ctx)
}

// Earn adds amount to the balance and returns the new balance.
func (s *Service) Earn(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.profile.Points(ctx)
	if err != nil {
		return 0, err
	}
	balance += amount
	if err := s.profile.SetPoints(ctx, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Spend subtracts amount from the balance. When the balance is too low it
// reports ok=false and leaves the balance unchanged; insufficient funds is
// a normal outcome, not an error. The balance never goes negative.
func (s *Service) Spend(ctx context.Context, amount int) (int, bool, error) {
	if amount <= 0 {
		return 0, false, ErrInvalidAmount
	}
	balance, err := s.profile.Points(ctx)
	if err != nil {
		return 0, false, err
	}
	if balance < amount {
		return balance, false, nil
	}
	balance -= amount
	if err := s.profile.SetPoints(ctx, balance); err != nil {
		return 0, false, err
	}
	return balance, true, nil
}
