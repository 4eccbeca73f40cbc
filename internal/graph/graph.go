package graph

import "MediaMap/internal/domain"

// Node is a subject or object of at least one triple.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Edge links a subject to an object and is labeled with the verb.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Graph is the node/edge shape consumed by network renderers.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Project builds a graph from triples. Nodes are deduplicated by exact text in
// first-seen order, verbs never become nodes, and every triple yields its own
// edge, so repeated subject/object pairs produce parallel edges.
func Project(triples []domain.Triple) Graph {
	g := Graph{
		Nodes: make([]Node, 0, len(triples)*2),
		Edges: make([]Edge, 0, len(triples)),
	}
	seen := make(map[string]struct{}, len(triples)*2)

	addNode := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		g.Nodes = append(g.Nodes, Node{ID: name, Label: name})
	}

	for _, t := range triples {
		addNode(t.Subject)
		addNode(t.Object)
		g.Edges = append(g.Edges, Edge{From: t.Subject, To: t.Object, Label: t.Verb})
	}

	return g
}
