package cas

import "time"

// SetClock replaces the time source used to stamp snapshots.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
