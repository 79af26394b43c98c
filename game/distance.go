package game

import (
	"fmt"
	"sync"
)

// MazeDistancer computes shortest walkable path lengths on a layout with
// breadth-first search, memoizing one distance table per source cell. It is
// safe for concurrent use.
type MazeDistancer struct {
	layout *Layout

	mu     sync.RWMutex
	tables map[Position][]int // source -> distance per cell index, -1 if unreachable
}

func NewMazeDistancer(l *Layout) *MazeDistancer {
	return &MazeDistancer{
		layout: l,
		tables: make(map[Position][]int),
	}
}

// Distance panics when either cell is a wall or the cells are disconnected.
func (d *MazeDistancer) Distance(a, b Position) int {
	if d.layout.IsWall(a) || d.layout.IsWall(b) {
		panic(fmt.Sprintf("maze distance queried on wall cell: %v -> %v", a, b))
	}
	dist := d.table(a)[d.layout.index(b)]
	if dist < 0 {
		panic(fmt.Sprintf("no path between %v and %v", a, b))
	}
	return dist
}

func (d *MazeDistancer) table(source Position) []int {
	d.mu.RLock()
	table, ok := d.tables[source]
	d.mu.RUnlock()
	if ok {
		return table
	}

	table = d.bfs(source)

	d.mu.Lock()
	d.tables[source] = table
	d.mu.Unlock()
	return table
}

func (d *MazeDistancer) bfs(source Position) []int {
	table := make([]int, d.layout.Width*d.layout.Height)
	for i := range table {
		table[i] = -1
	}
	table[d.layout.index(source)] = 0

	queue := []Position{source}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		next := table[d.layout.index(cell)] + 1
		for _, n := range d.layout.Neighbors(cell) {
			if i := d.layout.index(n); table[i] < 0 {
				table[i] = next
				queue = append(queue, n)
			}
		}
	}
	return table
}

var _ Distancer = (*MazeDistancer)(nil)
