package model

// MaxLastUsers is the size of the "last joined users" strip.
const MaxLastUsers = 4

// Stats is the aggregate snapshot rendered on the landing page.
// It is populated once per build and never mutated afterwards.
type Stats struct {
	PoolsCount   int64  `json:"poolsCount"`
	GuessesCount int64  `json:"guessesCount"`
	UsersCount   int64  `json:"usersCount"`
	LastUsers    []User `json:"lastUsers"`
}

// Valid reports whether the snapshot satisfies its invariants:
// non-negative counters and at most MaxLastUsers recent users.
func (s *Stats) Valid() bool {
	if s == nil {
		return false
	}
	if s.PoolsCount < 0 || s.GuessesCount < 0 || s.UsersCount < 0 {
		return false
	}
	return len(s.LastUsers) <= MaxLastUsers
}
