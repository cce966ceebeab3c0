package algo

// AlgorithmKind selects which matching solver variant to run.
type AlgorithmKind string

const (
	// ExhaustiveMatching evaluates every goal assignment in enumeration
	// order, keeping the best solution found.
	ExhaustiveMatching AlgorithmKind = "exhaustive_matching"
	// ExhaustiveMatchingSorted evaluates every goal assignment ordered
	// by ascending initial heuristic, pruning assignments whose initial
	// heuristic already reaches or exceeds the best cost found so far.
	ExhaustiveMatchingSorted AlgorithmKind = "exhaustive_matching_sorted"
	// ExhaustiveMatchingSortedWithMatchingID is ExhaustiveMatchingSorted
	// with each assignment's Independence Detection solve seeded from one
	// group per color instead of singletons. Every assignment is still
	// solved from scratch with its own CAT; nothing is reused across
	// assignments or colors, and color teams are not solved or merged
	// separately at the matching level.
	ExhaustiveMatchingSortedWithMatchingID AlgorithmKind = "exhaustive_matching_sorted_with_matching_id"
	// HeuristicMatching evaluates a single greedy goal assignment only.
	HeuristicMatching AlgorithmKind = "heuristic_matching"
)

// SolverConfig bundles the knobs that select and tune a matching
// solver run.
type SolverConfig struct {
	Algorithm             AlgorithmKind
	IndependenceDetection bool
	Shuffle               bool
	QueueLimit            int // 0 means unbounded
}

// DefaultSolverConfig returns the configuration used when nothing in
// config overrides it: sorted exhaustive matching, ID enabled, an
// unbounded queue, and shuffling enabled (it only takes effect once a
// QueueLimit below the number of assignments is set).
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Algorithm:             ExhaustiveMatchingSorted,
		IndependenceDetection: true,
		Shuffle:               true,
		QueueLimit:            0,
	}
}
