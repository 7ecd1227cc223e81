package jsonpath

import "sync"

// defaultSegmentCap and maxSegmentCap bound the scratch slices this
// package pools for collecting matched patterns in Set.Matching.
const (
	defaultSegmentCap = 8
	maxSegmentCap     = 64
)

var matchSlicePool = sync.Pool{
	New: func() any {
		s := make([]*Pattern, 0, defaultSegmentCap)
		return &s
	},
}

// getMatchSlice returns a zero-length *[]*Pattern scratch slice for
// collecting patterns that match during one Set evaluation call.
func getMatchSlice() *[]*Pattern {
	s := matchSlicePool.Get().(*[]*Pattern)
	*s = (*s)[:0]
	return s
}

// putMatchSlice returns s to the pool. Slices that have grown unusually
// large are dropped rather than pooled, so one pathological pattern set
// doesn't permanently inflate the pool's steady-state memory.
func putMatchSlice(s *[]*Pattern) {
	if cap(*s) > maxSegmentCap {
		return
	}
	matchSlicePool.Put(s)
}

// Matching returns the patterns in s that match path exactly. The
// returned slice is owned by the caller.
func (s *Set) Matching(path string) []*Pattern {
	scratch := getMatchSlice()
	defer putMatchSlice(scratch)

	for _, p := range s.patterns {
		if p.Match(path) {
			*scratch = append(*scratch, p)
		}
	}
	out := make([]*Pattern, len(*scratch))
	copy(out, *scratch)
	return out
}
