// Package unionfind implements a disjoint-set forest over string elements
// with path compression and union by rank.
//
// Amortized cost per Find/Union is O(α(n)), where α is the inverse Ackermann
// function. Union reports whether a merge happened, which is exactly the
// cycle-detection signal Kruskal's algorithm needs.
//
// A Set is not safe for concurrent use; algorithms own one exclusively for
// the duration of a run.
package unionfind

// Set is a disjoint-set forest keyed by element ID.
type Set struct {
	parent map[string]string
	rank   map[string]int
	count  int // number of disjoint sets
}

// New returns a Set with each of ids in its own singleton set.
// Duplicate ids are ignored.
func New(ids ...string) *Set {
	s := &Set{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		s.MakeSet(id)
	}

	return s
}

// MakeSet adds x as a singleton set. It is a no-op if x is already known.
func (s *Set) MakeSet(x string) {
	if _, ok := s.parent[x]; ok {
		return
	}
	s.parent[x] = x
	s.rank[x] = 0
	s.count++
}

// Find returns the representative of x's set, and false if x is unknown.
//
// Two-pass iterative path compression: first walk up to the root, then
// rewrite every visited node to point directly at it. No recursion, so deep
// chains cannot exhaust the stack.
func (s *Set) Find(x string) (string, bool) {
	if _, ok := s.parent[x]; !ok {
		return "", false
	}

	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root, true
}

// Union merges the sets containing a and b and reports whether a merge occurred.
// It returns false if a and b were already in the same set. Unknown elements
// are added as singletons first.
//
// The lower-rank root is attached under the higher-rank root; on a tie, b's
// root goes under a's root and a's root rank is incremented.
func (s *Set) Union(a, b string) bool {
	s.MakeSet(a)
	s.MakeSet(b)
	ra, _ := s.Find(a)
	rb, _ := s.Find(b)
	if ra == rb {
		return false
	}

	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}
	s.count--

	return true
}

// Connected reports whether a and b are known and belong to the same set.
func (s *Set) Connected(a, b string) bool {
	ra, okA := s.Find(a)
	rb, okB := s.Find(b)

	return okA && okB && ra == rb
}

// Count returns the number of disjoint sets.
func (s *Set) Count() int { return s.count }

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.parent) }

// Rank returns the rank of x's root, used by tests to verify balancing.
func (s *Set) Rank(x string) int {
	root, ok := s.Find(x)
	if !ok {
		return 0
	}

	return s.rank[root]
}
