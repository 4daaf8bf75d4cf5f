package search

import (
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// Chunk is the number of seeds evaluated between progress callback
// invocations.
const Chunk = 10000

// State is the terminal or in-flight status of a search call.
type State int

const (
	StateReady State = iota
	StateRunning
	StateExhausted
	StateCancelled
	StateLimitReached
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExhausted:
		return "exhausted"
	case StateCancelled:
		return "cancelled"
	case StateLimitReached:
		return "limit_reached"
	default:
		return "ready"
	}
}

// Request bundles a single search_range call's inputs.
type Request struct {
	Filter     *Node
	SeedLo     int32
	SeedHi     int32
	MaxResults int
	Version    version.Version

	// OnProgress is invoked every Chunk seeds with cumulative counters.
	// Returning false cancels the search.
	OnProgress func(checked, found uint64) bool

	// OnMatch is invoked once per matching seed. Returning false cancels
	// the search.
	OnMatch func(seed int32) bool

	// ScriptPredicate, when set, is ANDed with Filter's verdict for every
	// seed. It is the internal/filterscript escape hatch: callers close
	// over a compiled predicate and a day range so the kernel itself
	// never depends on goja. An error aborts the search as cancelled.
	ScriptPredicate func(seed int32) (bool, error)
}

// Result summarizes how a search call ended.
type Result struct {
	State   State
	Checked uint64
	Found   uint64
}

// SearchRange iterates seeds in [SeedLo, SeedHi], evaluating the filter
// against each and invoking the match/progress callbacks. It is
// single-threaded and synchronous: the only suspension points are the
// two callbacks. Higher layers parallelize by partitioning the seed
// interval across independent SearchRange calls.
func SearchRange(req Request) Result {
	if req.SeedLo > req.SeedHi {
		return Result{State: StateExhausted}
	}

	state := StateRunning
	var checked, found uint64

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = -1 // unbounded
	}

	for seed := req.SeedLo; ; seed++ {
		matched := Evaluate(seed, req.Filter, req.Version)
		if matched && req.ScriptPredicate != nil {
			ok, err := req.ScriptPredicate(seed)
			if err != nil {
				state = StateCancelled
				checked++
				break
			}
			matched = ok
		}
		if matched {
			found++
			if req.OnMatch != nil && !req.OnMatch(seed) {
				state = StateCancelled
				checked++
				break
			}
			if maxResults >= 0 && int(found) >= maxResults {
				state = StateLimitReached
				checked++
				break
			}
		}
		checked++

		if checked%Chunk == 0 && req.OnProgress != nil {
			if !req.OnProgress(checked, found) {
				state = StateCancelled
				break
			}
		}

		if seed == req.SeedHi {
			state = StateExhausted
			break
		}
	}

	if req.OnProgress != nil {
		req.OnProgress(checked, found)
	}

	return Result{State: state, Checked: checked, Found: found}
}
