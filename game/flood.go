package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/saper/util/collections"
)

type NeighborGetter func(*Cell) []*Cell

// Visitor handles one cell of a flood, returning whether the flood should
// spread to the cell's neighbors
type Visitor func(*Cell) bool

// flood visits cells breadth-first starting at origin. Cells are marked
// visited when dequeued, so a cell queued twice is only visited once.
func flood(origin *Cell, visit Visitor, getNeighbors NeighborGetter) int {
	var queue deque.Deque
	visited := make(collections.Set[int])

	queue.PushBack(origin)
	for queue.Len() > 0 {
		cell := queue.PopFront().(*Cell)

		if visited.Contains(cell.idx) {
			continue
		}
		visited.Add(cell.idx)

		if !visit(cell) {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			if !visited.Contains(neighbor.idx) {
				queue.PushBack(neighbor)
			}
		}
	}

	return visited.Len()
}
