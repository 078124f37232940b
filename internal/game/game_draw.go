package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rom100main/pac-minator/internal/entities"
	"github.com/rom100main/pac-minator/internal/geom"
	"github.com/rom100main/pac-minator/internal/round"
	tm "github.com/rom100main/pac-minator/internal/tilemap"
)

// hudHeight is the strip below the maze used for the score line.
const hudHeight = 20

// basicfont.Face7x13 is 7 pixels wide per character.
const glyphWidth = 7

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 184, B: 151, A: 255}
	playerColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	eyeWhite    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pupilColor  = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	buttonColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gold        = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

func (g *Game) drawMaze(dst *ebiten.Image) {
	m := g.round.Maze()
	ts := float32(m.TileSize)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			px := float32(x) * ts
			py := float32(y) * ts
			cx := px + ts/2
			cy := py + ts/2
			switch m.TileAt(x, y) {
			case tm.TileWall:
				vector.DrawFilledRect(dst, px, py, ts, ts, wallColor, false)
			case tm.TileDot:
				vector.DrawFilledCircle(dst, cx, cy, ts/10, pelletColor, true)
			case tm.TilePower:
				vector.DrawFilledCircle(dst, cx, cy, ts/4, pelletColor, true)
			}
		}
	}
}

// drawPlayer draws the body with a mouth wedge cut toward its heading.
func (g *Game) drawPlayer(dst *ebiten.Image) {
	p := g.round.Player()
	x, y, r := float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius)
	vector.DrawFilledCircle(dst, x, y, r, playerColor, true)

	dir := p.Dir
	if dir == entities.DirNone {
		dir = entities.DirRight
	}
	// The mouth opens and closes as the player crosses each tile.
	ts := g.round.Maze().TileSizePx()
	phase := math.Mod(p.Pos.X+p.Pos.Y, ts) / ts
	open := 0.1 + 0.6*math.Abs(math.Sin(phase*math.Pi))
	heading := math.Atan2(dir.Vec().Y, dir.Vec().X)

	tip := p.Pos.Add(geom.V(math.Cos(heading+open), math.Sin(heading+open)).Scale(float64(r) + 1))
	tail := p.Pos.Add(geom.V(math.Cos(heading-open), math.Sin(heading-open)).Scale(float64(r) + 1))
	g.fillPolygon(dst, []geom.Vec{p.Pos, tip, tail}, color.Black)
}

// drawGhost draws a dome body with a zigzag skirt and eyes looking toward
// the ghost's heading. Eaten ghosts are drawn as eyes only.
func (g *Game) drawGhost(dst *ebiten.Image, gh *entities.Ghost) {
	c := gh.Color(g.flashOn(gh))
	r := gh.Radius
	if gh.State != entities.GhostEaten {
		vector.DrawFilledCircle(dst, float32(gh.Pos.X), float32(gh.Pos.Y), float32(r), c, true)
		g.fillPolygon(dst, skirt(gh.Pos, r), c)
	}

	look := gh.Dir.Vec().Normalize().Scale(r / 6)
	for _, side := range []float64{-1, 1} {
		eye := gh.Pos.Add(geom.V(side*r*0.4, -r*0.2))
		vector.DrawFilledCircle(dst, float32(eye.X), float32(eye.Y), float32(r*0.3), eyeWhite, true)
		pupil := eye.Add(look)
		vector.DrawFilledCircle(dst, float32(pupil.X), float32(pupil.Y), float32(r*0.15), pupilColor, true)
	}
}

// flashOn alternates every 10 ticks while a frightened ghost is about to
// recover.
func (g *Game) flashOn(gh *entities.Ghost) bool {
	return gh.FrightenedEnding() && gh.FrightenedTicks()%20 < 10
}

// skirt returns the lower half of the ghost body: a rectangle from the
// center line down to a three-point zigzag hem.
func skirt(c geom.Vec, r float64) []geom.Vec {
	pts := []geom.Vec{
		c.Add(geom.V(-r, 0)),
		c.Add(geom.V(r, 0)),
		c.Add(geom.V(r, r)),
	}
	const teeth = 3
	step := 2 * r / teeth
	for i := teeth; i > 0; i-- {
		x := -r + float64(i)*step
		pts = append(pts,
			c.Add(geom.V(x-step/2, r*0.6)),
			c.Add(geom.V(x-step, r)),
		)
	}
	return pts
}

func (g *Game) fillPolygon(dst *ebiten.Image, pts []geom.Vec, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if g.whiteImg == nil {
		g.whiteImg = ebiten.NewImage(1, 1)
		g.whiteImg.Fill(color.White)
	}
	r, gr, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(gr) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, g.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	top := g.round.Maze().PixelHeight()
	best, bestName := g.bestScore()
	hiLabel := "High"
	if bestName != "" {
		hiLabel = fmt.Sprintf("High(%s)", bestName)
	}
	line := fmt.Sprintf("%s  Score: %d  %s: %d  Level: %d", g.playerName, g.round.Score(), hiLabel, best, g.round.Level())
	text.Draw(dst, line, basicfont.Face7x13, 4, top+14, color.White)

	// Power-up countdown in the bottom right corner.
	if p := g.round.Player(); p.PoweredUp() {
		secs := float64(p.PowerTicks) / float64(g.round.Config().Loop.TickRate)
		timer := fmt.Sprintf("Power: %.1fs", secs)
		text.Draw(dst, timer, basicfont.Face7x13, g.nativeWidth()-len(timer)*glyphWidth-4, top+14, color.RGBA{R: 0, G: 255, B: 255, A: 255})
	}
}

// drawBanner shows the round result and the restart button.
func (g *Game) drawBanner(dst *ebiten.Image) {
	mid := g.round.Maze().PixelHeight() / 2
	title, clr := "GAME OVER", color.Color(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	if g.round.Status() == round.StatusWon {
		title, clr = "YOU WIN!", gold
	}
	g.drawCentered(dst, title, mid-10, clr)
	g.drawCentered(dst, fmt.Sprintf("Score: %d", g.round.Score()), mid+8, color.White)

	x, y, w, h := g.restartButton()
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), buttonColor, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, color.White, false)
	g.drawCentered(dst, "Restart (R)", y+h/2+4, color.White)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, y int, clr color.Color) {
	x := (g.nativeWidth() - len(s)*glyphWidth) / 2
	text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
}
