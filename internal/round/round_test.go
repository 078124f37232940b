package round

import (
	"testing"

	"github.com/rom100main/pac-minator/internal/config"
	"github.com/rom100main/pac-minator/internal/entities"
)

// corridor has a power pellet at (1,1) and a long row of dots at row 3,
// with tile size 10.
var corridor = []string{
	"##########",
	"#o.......#",
	"#.######.#",
	"#........#",
	"##########",
}

func testConfig(layout []string, start config.Cell, spawns ...config.Cell) config.Config {
	cfg := config.Default()
	cfg.Maze.TileSize = 10
	cfg.Maze.Layout = layout
	cfg.Player.Start = start
	cfg.Player.Radius = 4
	cfg.Ghosts.Radius = 4
	cfg.Ghosts.Spawns = map[string]config.Cell{}
	for i, p := range entities.Personalities {
		cfg.Ghosts.Spawns[p.String()] = spawns[i]
	}
	return cfg
}

func mustRound(t *testing.T, cfg config.Config, opts ...Option) *Round {
	t.Helper()
	r, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func corridorRound(t *testing.T) *Round {
	t.Helper()
	cfg := testConfig(corridor, config.Cell{Col: 1, Row: 1},
		config.Cell{Col: 8, Row: 3}, config.Cell{Col: 7, Row: 3},
		config.Cell{Col: 6, Row: 3}, config.Cell{Col: 5, Row: 3})
	return mustRound(t, cfg)
}

func TestChainBonus(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 200},
		{n: 1, want: 200},
		{n: 2, want: 400},
		{n: 3, want: 800},
		{n: 4, want: 1600},
	}
	for _, tc := range tests {
		if got := ChainBonus(200, tc.n); got != tc.want {
			t.Fatalf("ChainBonus(200, %d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestPowerPelletFrightensAllButEaten(t *testing.T) {
	r := corridorRound(t)
	ghosts := r.Ghosts()
	eaten := ghosts[3]
	eaten.EnterEaten()
	// Keep it away from its spawn so it does not revive this tick.
	eaten.Pos = r.Maze().CellCenter(2, 3)

	r.Step()

	if r.Score() != 50 {
		t.Fatalf("expected 50 for the pellet, got %d", r.Score())
	}
	for _, g := range ghosts[:3] {
		if g.State != entities.GhostFrightened {
			t.Fatalf("%v should be frightened, got %v", g.Personality, g.State)
		}
	}
	if eaten.State != entities.GhostEaten {
		t.Fatalf("eaten ghost changed state to %v", eaten.State)
	}
}

func TestChainEatingThreeGhosts(t *testing.T) {
	r := corridorRound(t)
	r.Step()
	ghosts := r.Ghosts()

	wants := []int{200, 400, 800}
	for i, want := range wants {
		before := r.Score()
		g := ghosts[i+1]
		g.Pos = r.Player().Pos
		r.Step()
		if got := r.Score() - before; got != want {
			t.Fatalf("ghost %d: score increment %d, want %d", i+1, got, want)
		}
		if g.State != entities.GhostEaten {
			t.Fatalf("ghost %d not eaten: %v", i+1, g.State)
		}
	}
	if r.Score() != 50+1400 {
		t.Fatalf("expected total 1450, got %d", r.Score())
	}
	if r.Status() != StatusRunning {
		t.Fatalf("eating frightened ghosts must not end the round: %v", r.Status())
	}
}

func TestLastDotWins(t *testing.T) {
	cfg := testConfig([]string{
		"######",
		"#.   #",
		"######",
	}, config.Cell{Col: 1, Row: 1},
		config.Cell{Col: 3, Row: 1}, config.Cell{Col: 4, Row: 1},
		config.Cell{Col: 3, Row: 1}, config.Cell{Col: 4, Row: 1})
	r := mustRound(t, cfg)

	r.Step()
	if n := r.Maze().CountRemaining(); n != 0 {
		t.Fatalf("expected no dots left, got %d", n)
	}
	if r.Status() != StatusWon {
		t.Fatalf("expected win, got %v", r.Status())
	}
}

func TestLossFreezesRound(t *testing.T) {
	r := corridorRound(t)
	r.Apply(ActionRight)
	r.Step()
	r.Step()

	g := r.Ghosts()[0]
	g.Pos = r.Player().Pos
	r.Step()
	if r.Status() != StatusLost {
		t.Fatalf("expected loss, got %v", r.Status())
	}

	frozen := r.Snapshot()
	r.Apply(ActionLeft)
	for i := 0; i < 10; i++ {
		r.Step()
	}
	if got := r.Snapshot(); got != frozen {
		t.Fatalf("round kept running after loss:\n%+v\n%+v", frozen, got)
	}
}

func TestRestart(t *testing.T) {
	r := corridorRound(t)
	total := r.Maze().CountRemaining()

	if r.Restart() {
		t.Fatalf("restart must be ignored while running")
	}

	r.Step()
	r.Ghosts()[0].State = entities.GhostChase
	r.Ghosts()[0].Pos = r.Player().Pos
	r.Step()
	if r.Status() != StatusLost {
		t.Fatalf("expected loss, got %v", r.Status())
	}

	r.Apply(ActionRestart)
	if r.Status() != StatusRunning || r.Level() != 2 || r.Tick() != 0 {
		t.Fatalf("bad restart: status=%v level=%d tick=%d", r.Status(), r.Level(), r.Tick())
	}
	if r.Score() != 0 || r.Player().PoweredUp() {
		t.Fatalf("player not reset: score=%d power=%d", r.Score(), r.Player().PowerTicks)
	}
	if got := r.Maze().CountRemaining(); got != total {
		t.Fatalf("maze not restored: %d of %d", got, total)
	}
	for _, g := range r.Ghosts() {
		if g.State != entities.GhostScatter || g.Pos != g.Spawn {
			t.Fatalf("%v not reset: %v at %v", g.Personality, g.State, g.Pos)
		}
	}
}

func TestPause(t *testing.T) {
	r := corridorRound(t)
	r.Apply(ActionPause)
	r.Step()
	if !r.Paused() || r.Tick() != 0 {
		t.Fatalf("paused round advanced: tick=%d", r.Tick())
	}
	r.Apply(ActionPause)
	r.Step()
	if r.Paused() || r.Tick() != 1 {
		t.Fatalf("unpaused round did not advance: tick=%d", r.Tick())
	}
}

func script(i int) Action {
	switch (i / 40) % 4 {
	case 0:
		return ActionLeft
	case 1:
		return ActionUp
	case 2:
		return ActionRight
	default:
		return ActionDown
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		r := mustRound(t, config.Default(), WithSeed(12345))
		for i := 0; i < 1500 && r.Running(); i++ {
			if i%10 == 0 {
				r.Apply(script(i))
			}
			r.Step()
		}
		return r.Snapshot()
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("equal seeds diverged:\n%+v\n%+v", a, b)
	}
}

func TestActorsStayOutOfWalls(t *testing.T) {
	r := mustRound(t, config.Default(), WithSeed(7))
	m := r.Maze()
	for i := 0; i < 3000 && r.Running(); i++ {
		if i%10 == 0 {
			r.Apply(script(i))
		}
		r.Step()
		if m.IsWall(r.Player().Pos) {
			t.Fatalf("tick %d: player inside wall at %v", r.Tick(), r.Player().Pos)
		}
		for _, g := range r.Ghosts() {
			if m.IsWall(g.Pos) {
				t.Fatalf("tick %d: %v inside wall at %v", r.Tick(), g.Personality, g.Pos)
			}
		}
	}
}
