package algo

// StatisticTracker accumulates counters describing how much search work
// a matching solver performed, independent of the chosen algorithm
// variant: how many goal assignments were actually evaluated (versus
// skipped by cost pruning) and the largest Independence Detection group
// that had to be solved jointly.
type StatisticTracker struct {
	AssignmentsEvaluated int
	AssignmentsSkipped   int
	MaxGroupSize         int
}

// NewStatisticTracker returns a zeroed tracker.
func NewStatisticTracker() *StatisticTracker {
	return &StatisticTracker{}
}

// RecordEvaluated counts one goal assignment that was actually solved.
func (s *StatisticTracker) RecordEvaluated() {
	s.AssignmentsEvaluated++
}

// RecordSkipped counts one goal assignment pruned before solving, by
// initial-heuristic ordering or an already-tighter best cost.
func (s *StatisticTracker) RecordSkipped() {
	s.AssignmentsSkipped++
}

// RecordGroupSize updates the largest Independence Detection group seen
// so far, across every assignment evaluated.
func (s *StatisticTracker) RecordGroupSize(size int) {
	if size > s.MaxGroupSize {
		s.MaxGroupSize = size
	}
}
