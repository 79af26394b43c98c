package game

import (
	"fmt"
	"sort"
	"strings"
)

const (
	wallSymbol    = '%'
	foodSymbol    = '.'
	capsuleSymbol = 'o'
)

// Layout is the static board: walls, initial items and agent starts.
// Y grows upwards, so the first text row is the top of the board.
type Layout struct {
	Width    int
	Height   int
	Food     []Position
	Capsules []Position
	Starts   []Position // indexed by agent

	walls []bool // indexed by y*Width+x
}

// ParseLayout reads a layout drawn with '%' walls, '.' food, 'o' capsules and
// digits '1'-'4' for agent starts.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	l := &Layout{
		Width:  len(lines[0]),
		Height: len(lines),
	}
	if l.Width%2 != 0 {
		return nil, fmt.Errorf("layout width %d must be even", l.Width)
	}
	l.walls = make([]bool, l.Width*l.Height)

	starts := make(map[int]Position)
	for row, line := range lines {
		if len(line) != l.Width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", row, len(line), l.Width)
		}
		y := l.Height - 1 - row
		for x, symbol := range line {
			p := Position{X: x, Y: y}
			switch {
			case symbol == wallSymbol:
				l.walls[l.index(p)] = true
			case symbol == foodSymbol:
				l.Food = append(l.Food, p)
			case symbol == capsuleSymbol:
				l.Capsules = append(l.Capsules, p)
			case symbol >= '1' && symbol <= '4':
				agent := int(symbol - '1')
				if _, dup := starts[agent]; dup {
					return nil, fmt.Errorf("agent %c placed twice", symbol)
				}
				starts[agent] = p
			case symbol == ' ':
			default:
				return nil, fmt.Errorf("unknown symbol %q at row %d col %d", symbol, row, x)
			}
		}
	}

	if len(starts) < 2 || len(starts)%2 != 0 {
		return nil, fmt.Errorf("layout needs an even number of agents, got %d", len(starts))
	}
	l.Starts = make([]Position, len(starts))
	for agent := range l.Starts {
		p, ok := starts[agent]
		if !ok {
			return nil, fmt.Errorf("agent %d has no start", agent+1)
		}
		l.Starts[agent] = p
	}
	return l, nil
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}

func (l *Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.Width && p.Y < l.Height
}

// IsWall reports whether p is blocked. Cells outside the board count as walls.
func (l *Layout) IsWall(p Position) bool {
	if !l.InBounds(p) {
		return true
	}
	return l.walls[l.index(p)]
}

// Side returns the team whose home half contains p.
func (l *Layout) Side(p Position) Team {
	if p.X < l.Width/2 {
		return Red
	}
	return Blue
}

// Neighbors returns the walkable cells adjacent to p, in Directions order.
func (l *Layout) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, len(Directions))
	for _, dir := range Directions {
		if n := p.Add(dir); !l.IsWall(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// NumAgents returns the number of agent starts on the board.
func (l *Layout) NumAgents() int {
	return len(l.Starts)
}

// String renders the board back into layout text, items at their initial cells.
func (l *Layout) String() string {
	grid := make([][]byte, l.Height)
	for row := range grid {
		grid[row] = []byte(strings.Repeat(" ", l.Width))
	}
	set := func(p Position, symbol byte) {
		grid[l.Height-1-p.Y][p.X] = symbol
	}
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if p := (Position{X: x, Y: y}); l.IsWall(p) {
				set(p, wallSymbol)
			}
		}
	}
	for _, p := range l.Food {
		set(p, foodSymbol)
	}
	for _, p := range l.Capsules {
		set(p, capsuleSymbol)
	}
	for agent, p := range l.Starts {
		set(p, byte('1'+agent))
	}
	rows := make([]string, l.Height)
	for i, row := range grid {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}

// Built-in layouts, point-symmetric so both teams face the same board.
var layouts = map[string]string{
	"tinyCapture": `
%%%%%%%%%%%%%%%%%%%%
%3 .  % .  . % . o %
% %%%.% %%%% % %%% %
%1 .     %%     . 2%
% %%% % %%%% %.%%% %
% o . % .  . %  . 4%
%%%%%%%%%%%%%%%%%%%%`,
	"mediumCapture": `
%%%%%%%%%%%%%%%%%%%%%%%%%%%%
%3  .  %   . ..  %  .  .   %
% %%%%.% %%% %   %  %%%%% 2%
%   .  %  .   .  %   %  o %%
% %% %   %%%    %%.  %  .  %
%  .  %  .%%    %%%   % %% %
%% o  %   %  .   .  %  .   %
%1 %%%%%  %   % %%% %.%%%% %
%   .  .  %  .. .   %  .  4%
%%%%%%%%%%%%%%%%%%%%%%%%%%%%`,
}

// LoadLayout parses one of the built-in layouts by name.
func LoadLayout(name string) (*Layout, error) {
	text, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	return ParseLayout(text)
}

// LayoutNames lists the built-in layouts in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
