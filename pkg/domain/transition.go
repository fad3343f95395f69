package domain

// Transition is a single row of the state transition table after
// normalization. Field order matters: it is the key order of every
// structured export, and downstream snapshot diffs rely on it.
type Transition struct {
	Trigger string `json:"trigger" yaml:"trigger"`
	Source  string `json:"source" yaml:"source"`
	Dest    string `json:"dest" yaml:"dest"`
}

// Table is the ordered sequence of transitions parsed from one document.
// Row order is preserved; duplicates are kept as-is.
type Table []Transition

// Adjacency projects the table into source -> dest -> trigger.
// When two rows share the same (source, dest) pair the later row wins,
// matching the table's insertion order. The list and graph projections keep
// both rows; only this view collapses them.
func (t Table) Adjacency() map[string]map[string]string {
	adj := make(map[string]map[string]string)
	for _, tr := range t {
		inner, ok := adj[tr.Source]
		if !ok {
			inner = make(map[string]string)
			adj[tr.Source] = inner
		}
		inner[tr.Dest] = tr.Trigger
	}
	return adj
}
