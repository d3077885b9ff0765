package tagging

// matcher is an Aho-Corasick automaton over folded UTF-8 bytes. Each pattern
// carries the index of its tag; a scan reports the lowest index that occurs.

type acNode struct {
	next [256]int32
	fail int32
	// best is the lowest tag index ending here, following fail links; -1 if none
	best int
}

type matcher struct {
	nodes []acNode
}

func newNode() acNode {
	n := acNode{best: -1}
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

func newMatcher() *matcher { return &matcher{nodes: []acNode{newNode()}} }

func (m *matcher) add(pat string, tag int) {
	if pat == "" {
		return
	}
	s := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nx := m.nodes[s].next[b]
		if nx < 0 {
			nx = int32(len(m.nodes))
			m.nodes[s].next[b] = nx
			m.nodes = append(m.nodes, newNode())
		}
		s = nx
	}
	if cur := m.nodes[s].best; cur < 0 || tag < cur {
		m.nodes[s].best = tag
	}
}

// build sets fail links breadth first and folds each node's best with its fail target
func (m *matcher) build() {
	q := make([]int32, 0, len(m.nodes))
	for b := 0; b < 256; b++ {
		if s := m.nodes[0].next[b]; s >= 0 {
			m.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := 0; b < 256; b++ {
			s := m.nodes[r].next[b]
			if s < 0 {
				continue
			}
			q = append(q, s)
			f := m.nodes[r].fail
			for f != 0 && m.nodes[f].next[b] < 0 {
				f = m.nodes[f].fail
			}
			if nx := m.nodes[f].next[b]; nx >= 0 && nx != s {
				m.nodes[s].fail = nx
			}
			if fb := m.nodes[m.nodes[s].fail].best; fb >= 0 && (m.nodes[s].best < 0 || fb < m.nodes[s].best) {
				m.nodes[s].best = fb
			}
		}
	}
}

// first returns the lowest tag index with a pattern in text, or -1
func (m *matcher) first(text string) int {
	best := -1
	s := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for s != 0 && m.nodes[s].next[b] < 0 {
			s = m.nodes[s].fail
		}
		if nx := m.nodes[s].next[b]; nx >= 0 {
			s = nx
		}
		if t := m.nodes[s].best; t >= 0 && (best < 0 || t < best) {
			best = t
			if best == 0 {
				return 0
			}
		}
	}
	return best
}
