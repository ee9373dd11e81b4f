package engine

import (
	"github.com/mesh-intelligence/journal/internal/journalerr"
)

// Direction selects which edge of the causality graph TraceCausality walks.
type Direction string

const (
	DirectionBackward Direction = "backward"
	DirectionForward  Direction = "forward"
	DirectionBoth     Direction = "both"
)

// maxTraceDepth hard-caps TraceCausality's BFS regardless of the caller's
// requested depth.
const maxTraceDepth = 50

// CausalityNode is one entry's summary within a trace_causality chain.
type CausalityNode struct {
	ID      string
	Author  string
	Context string
	Edges   []string
}

// TraceCausality walks the caused_by graph from entryID by BFS, guarding
// against cycles with a visited set and capping depth at maxTraceDepth.
func (e *Engine) TraceCausality(entryID string, direction Direction, depth int) ([]CausalityNode, error) {
	if depth <= 0 || depth > maxTraceDepth {
		depth = maxTraceDepth
	}

	root, _, err := e.Index.Get(entryID)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, journalerr.New(journalerr.KindNotFound, "entry "+entryID+" not found")
	}

	switch direction {
	case DirectionBackward:
		return e.traceBackward(entryID, depth)
	case DirectionForward:
		return e.traceForward(entryID, depth)
	case DirectionBoth:
		backward, err := e.traceBackward(entryID, depth)
		if err != nil {
			return nil, err
		}
		forward, err := e.traceForward(entryID, depth)
		if err != nil {
			return nil, err
		}
		return append(backward, forward...), nil
	default:
		return nil, journalerr.New(journalerr.KindInvalidArgument, "direction must be backward, forward, or both")
	}
}

func (e *Engine) traceBackward(rootID string, depth int) ([]CausalityNode, error) {
	visited := map[string]bool{}
	var result []CausalityNode
	queue := []string{rootID}

	for level := 0; level <= depth && len(queue) > 0; level++ {
		var next []string
		for _, id := range queue {
			if visited[id] {
				continue
			}
			visited[id] = true

			ent, _, err := e.Index.Get(id)
			if err != nil {
				return nil, err
			}
			if ent == nil {
				continue
			}
			result = append(result, CausalityNode{ID: ent.ID, Author: ent.Author, Context: shorten(ent.Context, 80), Edges: ent.CausedBy})
			for _, nb := range ent.CausedBy {
				if !visited[nb] {
					next = append(next, nb)
				}
			}
		}
		queue = next
	}
	return result, nil
}

func (e *Engine) traceForward(rootID string, depth int) ([]CausalityNode, error) {
	visited := map[string]bool{}
	var result []CausalityNode
	queue := []string{rootID}

	for level := 0; level <= depth && len(queue) > 0; level++ {
		var next []string
		for _, id := range queue {
			if visited[id] {
				continue
			}
			visited[id] = true

			ent, _, err := e.Index.Get(id)
			if err != nil {
				return nil, err
			}
			if ent == nil {
				continue
			}

			children, err := e.Index.FindCausedBy(id)
			if err != nil {
				return nil, err
			}
			edges := make([]string, 0, len(children))
			for _, child := range children {
				edges = append(edges, child.ID)
				if !visited[child.ID] {
					next = append(next, child.ID)
				}
			}
			result = append(result, CausalityNode{ID: ent.ID, Author: ent.Author, Context: shorten(ent.Context, 80), Edges: edges})
		}
		queue = next
	}
	return result, nil
}
