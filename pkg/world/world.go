package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// World is the host side of a script: the grid the program inspects.
type World interface {
	// LoadGrid replaces the world with the grid stored at path
	LoadGrid(path string) error
	// Size returns the grid dimensions in cells
	Size() (width, height int)
}

// Grid is a World read from a text file, one row per line
type Grid struct {
	rows  [][]rune
	width int
}

// NewGrid returns an empty grid
func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) LoadGrid(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open world: %w", err)
	}
	defer f.Close()

	return g.Read(f)
}

// Read replaces the grid with the rows read from r
func (g *Grid) Read(r io.Reader) error {
	var rows [][]rune
	width := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read world: %w", err)
	}

	g.rows, g.width = rows, width
	return nil
}

func (g *Grid) Size() (int, int) {
	return g.width, len(g.rows)
}

// Cell returns the rune at column x of row y. Cells past the end of a short
// row, or outside the grid, are blank.
func (g *Grid) Cell(x, y int) rune {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return ' '
	}
	return g.rows[y][x]
}
