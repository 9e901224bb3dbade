package dcop

// ValuePair keys a constraint cost by (own value, neighbor value), read
// from the owning agent's side of the edge.
type ValuePair struct {
	Own      Value
	Neighbor Value
}

// CostTable maps value combinations to a non-negative cost. Combinations
// absent from the table cost 0 — "no constraint", not a zero-cost
// preference; generators emit complete tables, but lookups never fail.
type CostTable map[ValuePair]float64

// Reversed returns the same table viewed from the far endpoint: every
// (own, neighbor) entry becomes (neighbor, own). Used when wiring one
// undirected constraint into both agents' stores.
// Complexity: O(len(t)).
func (t CostTable) Reversed() CostTable {
	r := make(CostTable, len(t))
	for pair, cost := range t {
		r[ValuePair{Own: pair.Neighbor, Neighbor: pair.Own}] = cost
	}

	return r
}

// ConstraintStore holds one directed CostTable per neighbor. Each agent
// owns its store exclusively; the two endpoints of an undirected
// constraint are populated independently (symmetry is the generator's
// promise, never the store's assumption).
type ConstraintStore struct {
	tables map[string]CostTable
}

// NewConstraintStore returns an empty store.
func NewConstraintStore() ConstraintStore {
	return ConstraintStore{tables: make(map[string]CostTable)}
}

// Add merges costs into the table for neighborID, copying entries so the
// caller's map stays untouched. Later entries overwrite earlier ones for
// the same value pair.
func (s ConstraintStore) Add(neighborID string, costs CostTable) {
	table, ok := s.tables[neighborID]
	if !ok {
		table = make(CostTable, len(costs))
		s.tables[neighborID] = table
	}
	for pair, cost := range costs {
		table[pair] = cost
	}
}

// Cost returns the constraint cost between own and neighbor values for
// neighborID. Unknown neighbors and missing entries cost 0.
// Complexity: O(1).
func (s ConstraintStore) Cost(neighborID string, own, neighbor Value) float64 {
	return s.tables[neighborID][ValuePair{Own: own, Neighbor: neighbor}]
}
