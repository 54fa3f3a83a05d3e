// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// The walk uses an explicit stack of frames instead of recursion, so arbitrarily
// deep graphs (long chains) cannot exhaust the goroutine stack. Each frame keeps
// its own neighbor cursor, which reproduces the exact order a recursive
// "visit, then recurse into each unvisited neighbor" formulation would produce.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// frame is one activation record of the explicit stack.
type frame struct {
	id    string
	depth int
	nbrs  []string
	next  int // index of the next neighbor to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Returns DFSResult or error if aborted by context or hook; the partial result
// is returned alongside the error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Finish:  make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, walker.traverse(startID)
	}
	for _, v := range vertices {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root string) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check, once per stack step
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. Advance the cursor to the next unvisited, unfiltered neighbor
		descended := false
		for top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nid] = top.id
			// discover may grow the stack and invalidate top.
			if err := w.discover(nid, top.depth+1); err != nil {
				return err
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		// 3. All neighbors done: finish this vertex
		if err := w.finish(); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, runs the pre-order hook and pushes its frame.
// Vertices at MaxDepth get a frame with no neighbors, so they finish at once.
func (w *dfsWalker) discover(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	var nbrs []string
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if nbrs, err = w.graph.NeighborIDs(id); err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// finish pops the top frame, runs the post-order hook and records Finish.
func (w *dfsWalker) finish() error {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(top.id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", top.id, err)
		}
	}
	w.res.Finish = append(w.res.Finish, top.id)

	return nil
}
