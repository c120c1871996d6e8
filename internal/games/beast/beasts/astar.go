package beasts

import (
	"container/heap"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// Step is one edge of the path search graph.
type Step struct {
	To board.Coord
	// Bonus is subtracted from the heuristic of To to prefer the step.
	Bonus int
}

type pathNode struct {
	coord board.Coord
	f     int
	seq   int // insertion order, breaks ties between equal f scores
	index int // heap index, -1 once popped
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	if ol[i].f != ol[j].f {
		return ol[i].f < ol[j].f
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*ol = old[:len(old)-1]
	return n
}

// FindPath runs A* from start to goal with unit edge costs and the Chebyshev
// heuristic. next lists the edges leaving a cell; it is never called for the
// goal. The returned path starts with start and ends with goal.
func FindPath(start, goal board.Coord, next func(board.Coord) []Step) ([]board.Coord, bool) {
	cameFrom := make(map[board.Coord]board.Coord)
	gScore := map[board.Coord]int{start: 0}
	nodes := make(map[board.Coord]*pathNode)

	seq := 0
	first := &pathNode{coord: start, f: Heuristic(start, goal), seq: seq}
	nodes[start] = first
	ol := &openList{}
	heap.Push(ol, first)

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.coord == goal {
			return ReconstructPath(cameFrom, goal), true
		}

		for _, step := range next(cur.coord) {
			tentative := gScore[cur.coord] + 1
			if known, ok := gScore[step.To]; ok && tentative >= known {
				continue
			}
			cameFrom[step.To] = cur.coord
			gScore[step.To] = tentative
			f := tentative + Heuristic(step.To, goal) - step.Bonus

			if node, ok := nodes[step.To]; ok && node.index >= 0 {
				node.f = f
				heap.Fix(ol, node.index)
				continue
			}
			seq++
			node := &pathNode{coord: step.To, f: f, seq: seq}
			nodes[step.To] = node
			heap.Push(ol, node)
		}
	}

	return nil, false
}

// ReconstructPath follows back-pointers from current and returns the path in
// travel order.
func ReconstructPath(cameFrom map[board.Coord]board.Coord, current board.Coord) []board.Coord {
	path := []board.Coord{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
