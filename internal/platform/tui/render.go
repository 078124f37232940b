package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rom100main/pac-minator/internal/entities"
	"github.com/rom100main/pac-minator/internal/round"
	tm "github.com/rom100main/pac-minator/internal/tilemap"
)

type cell struct {
	ch rune
	fg color.RGBA
}

var (
	wallFg   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	pelletFg = color.RGBA{R: 255, G: 184, B: 151, A: 255}
	playerFg = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
)

// cells lays out the maze with the actors drawn over it, one cell per tile.
func cells(r *round.Round) [][]cell {
	m := r.Maze()
	grid := make([][]cell, m.Height)
	for y := range grid {
		grid[y] = make([]cell, m.Width)
		for x := range grid[y] {
			switch m.TileAt(x, y) {
			case tm.TileWall:
				grid[y][x] = cell{ch: '█', fg: wallFg}
			case tm.TileDot:
				grid[y][x] = cell{ch: '·', fg: pelletFg}
			case tm.TilePower:
				grid[y][x] = cell{ch: '●', fg: pelletFg}
			default:
				grid[y][x] = cell{ch: ' '}
			}
		}
	}

	put := func(col, row int, c cell) {
		if row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row]) {
			grid[row][col] = c
		}
	}
	for _, g := range r.Ghosts() {
		ch := 'M'
		if g.State == entities.GhostEaten {
			ch = '"'
		}
		flash := g.FrightenedTicks()%20 < 10
		col, row := m.TileOf(g.Pos)
		put(col, row, cell{ch: ch, fg: g.Color(flash)})
	}
	col, row := m.TileOf(r.Player().Pos)
	put(col, row, cell{ch: 'C', fg: playerFg})
	return grid
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("PAC-MAN"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  Score: %d  Level: %d", m.name, m.round.Score(), m.round.Level())))
	if p := m.round.Player(); p.PoweredUp() {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  Power: %d", p.PowerTicks)))
	}
	b.WriteString("\n\n")

	styles := map[color.RGBA]lipgloss.Style{}
	for _, line := range cells(m.round) {
		for _, c := range line {
			st, ok := styles[c.fg]
			if !ok {
				st = lipgloss.NewStyle().Foreground(hex(c.fg))
				styles[c.fg] = st
			}
			b.WriteString(st.Render(string(c.ch)))
		}
		b.WriteString("\n")
	}

	switch {
	case m.round.Status() == round.StatusWon:
		b.WriteString(bannerStyle.Foreground(lipgloss.Color("11")).Render("YOU WIN! press r to play again"))
	case m.round.Status() == round.StatusLost:
		b.WriteString(bannerStyle.Foreground(lipgloss.Color("9")).Render("GAME OVER  press r to play again"))
	case m.round.Paused():
		b.WriteString(bannerStyle.Render("PAUSED"))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
