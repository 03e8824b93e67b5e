package domain

// SkipSet holds absolute paths verified OK by a previous run. It is loaded
// once at startup and read-only for the remainder of the run; the current
// run's own OK list is written as a separate artifact, never merged back.
type SkipSet map[string]struct{}

func NewSkipSet() SkipSet { return make(SkipSet) }

// Add normalizes and inserts a path.
func (s SkipSet) Add(path string) {
	s[NormalizePath(path)] = struct{}{}
}

// Contains reports whether the normalized path is in the set.
func (s SkipSet) Contains(path string) bool {
	_, ok := s[NormalizePath(path)]
	return ok
}

func (s SkipSet) Len() int { return len(s) }
