package entities

import (
	"math/rand"
	"testing"

	"github.com/rom100main/pac-minator/internal/geom"
)

func testGhostConfig() GhostConfig {
	return GhostConfig{
		Speed:            2,
		Radius:           4,
		FrightenedTicks:  20,
		ScatterTicks:     3,
		ChaseTicks:       5,
		FrightenedFactor: 0.5,
		EatenFactor:      2,
		StuckTicks:       10,
		StuckEpsilon:     0.5,
		OverrideTicks:    10,
		ShyDistanceTiles: 8,
	}
}

func TestChooseDirectionSkipsReverse(t *testing.T) {
	m := mustMaze(t, ring)
	g := NewGhost(Pursuer, m.CellCenter(3, 1), geom.V(0, 0), testGhostConfig())
	g.Dir = DirRight
	// Home is behind the ghost, but doubling back is not allowed.
	d := g.chooseDirection(m, testPlayer(m.CellCenter(1, 3)), nil, rand.New(rand.NewSource(1)))
	if d != DirRight {
		t.Fatalf("expected to keep going right, got %v", d)
	}
}

func TestChooseDirectionReversesInDeadEnd(t *testing.T) {
	m := mustMaze(t, []string{
		"#####",
		"#...#",
		"#####",
	})
	g := NewGhost(Pursuer, m.CellCenter(3, 1), geom.V(100, 100), testGhostConfig())
	g.Dir = DirRight
	d := g.chooseDirection(m, testPlayer(m.CellCenter(1, 1)), nil, rand.New(rand.NewSource(1)))
	if d != DirLeft {
		t.Fatalf("dead end should force reversal, got %v", d)
	}
}

func TestChooseDirectionTieBreak(t *testing.T) {
	m := mustMaze(t, ring)
	// From (1,1) both down and right land 10px from the target.
	g := NewGhost(Ambusher, m.CellCenter(1, 1), geom.V(25, 25), testGhostConfig())
	d := g.chooseDirection(m, testPlayer(m.CellCenter(5, 3)), nil, rand.New(rand.NewSource(1)))
	if d != DirDown {
		t.Fatalf("tie should resolve in up/down/left/right order, got %v", d)
	}
}

func TestFrightenedAndEatenTransitions(t *testing.T) {
	cfg := testGhostConfig()
	g := NewGhost(Flanker, geom.V(15, 15), geom.V(0, 0), cfg)
	g.Dir = DirRight

	g.EnterFrightened()
	if g.State != GhostFrightened || g.Dir != DirLeft || g.Speed != cfg.Speed*0.5 {
		t.Fatalf("bad frightened entry: state=%v dir=%v speed=%v", g.State, g.Dir, g.Speed)
	}

	g.EnterEaten()
	if g.State != GhostEaten || g.Speed != cfg.Speed*2 {
		t.Fatalf("bad eaten entry: state=%v speed=%v", g.State, g.Speed)
	}

	g.EnterFrightened()
	if g.State != GhostEaten {
		t.Fatalf("eaten ghost must ignore power pellets, got %v", g.State)
	}
}

func TestEatenGhostRevivesAtSpawn(t *testing.T) {
	m := mustMaze(t, ring)
	cfg := testGhostConfig()
	g := NewGhost(Opportunist, m.CellCenter(1, 1), geom.V(0, 0), cfg)
	g.EnterEaten()
	g.Pos = m.CellCenter(1, 1).Add(geom.V(4, 0))
	g.Update(m, testPlayer(m.CellCenter(5, 3)), nil, rand.New(rand.NewSource(1)))
	if g.State != GhostScatter {
		t.Fatalf("expected revive to scatter, got %v", g.State)
	}
	if g.Speed != cfg.Speed {
		t.Fatalf("expected normal speed after revive, got %v", g.Speed)
	}
}

func TestModeCycleReverses(t *testing.T) {
	g := NewGhost(Pursuer, geom.V(15, 15), geom.V(0, 0), testGhostConfig())
	g.Dir = DirUp
	for i := 0; i < 3; i++ {
		g.advanceMode()
	}
	if g.State != GhostChase || g.Dir != DirDown {
		t.Fatalf("after scatter phase: state=%v dir=%v", g.State, g.Dir)
	}
	for i := 0; i < 5; i++ {
		g.advanceMode()
	}
	if g.State != GhostScatter || g.Dir != DirUp {
		t.Fatalf("after chase phase: state=%v dir=%v", g.State, g.Dir)
	}
}

func TestFrightenedResumesCyclePhase(t *testing.T) {
	m := mustMaze(t, ring)
	g := NewGhost(Pursuer, m.CellCenter(1, 1), geom.V(0, 0), testGhostConfig())
	for i := 0; i < 3; i++ {
		g.advanceMode()
	}
	g.modeTimer = 2
	g.EnterFrightened()
	g.frightenedTimer = 1
	g.Update(m, testPlayer(m.CellCenter(5, 3)), nil, rand.New(rand.NewSource(1)))
	if g.State != GhostChase {
		t.Fatalf("expected to resume chase, got %v", g.State)
	}
	if g.modeTimer != 2 {
		t.Fatalf("cycle timer advanced while frightened: %d", g.modeTimer)
	}
}

func TestStuckGhostIsForcedElsewhere(t *testing.T) {
	m := mustMaze(t, ring)
	cfg := testGhostConfig()
	g := NewGhost(Pursuer, m.CellCenter(3, 1), geom.V(100, 0), cfg)
	g.Dir = DirRight
	g.stuckTicks = cfg.StuckTicks - 1
	g.lastPos = g.Pos

	g.Update(m, testPlayer(m.CellCenter(5, 3)), nil, rand.New(rand.NewSource(7)))
	if g.Dir != DirLeft {
		t.Fatalf("stuck ghost should be forced off its heading, got %v", g.Dir)
	}
	if g.overrideTicks != cfg.OverrideTicks-1 {
		t.Fatalf("override should be held, %d ticks left", g.overrideTicks)
	}
	if g.Pos != m.CellCenter(3, 1).Add(geom.V(-2, 0)) {
		t.Fatalf("expected one step left, got %v", g.Pos)
	}
}

func TestChaseTarget(t *testing.T) {
	player := geom.V(50, 50)
	tests := []struct {
		name string
		p    Personality
		in   ChaseInput
		want geom.Vec
	}{
		{name: "pursuer", p: Pursuer, in: ChaseInput{Player: player, PlayerDir: DirLeft}, want: player},
		{name: "ambusher right", p: Ambusher, in: ChaseInput{Player: player, PlayerDir: DirRight}, want: geom.V(90, 50)},
		{name: "ambusher up quirk", p: Ambusher, in: ChaseInput{Player: player, PlayerDir: DirUp}, want: geom.V(10, 10)},
		{name: "ambusher idle", p: Ambusher, in: ChaseInput{Player: player}, want: player},
		{name: "flanker", p: Flanker, in: ChaseInput{Player: player, PlayerDir: DirLeft, Pursuer: geom.V(20, 50), HasPursuer: true}, want: geom.V(40, 50)},
		{name: "flanker up quirk", p: Flanker, in: ChaseInput{Player: player, PlayerDir: DirUp, Pursuer: geom.V(0, 0), HasPursuer: true}, want: geom.V(60, 60)},
		{name: "flanker alone", p: Flanker, in: ChaseInput{Player: player, PlayerDir: DirDown}, want: geom.V(50, 70)},
		{name: "opportunist far", p: Opportunist, in: ChaseInput{Self: geom.V(200, 50), Home: geom.V(0, 180), Player: player}, want: player},
		{name: "opportunist near", p: Opportunist, in: ChaseInput{Self: geom.V(60, 50), Home: geom.V(0, 180), Player: player}, want: geom.V(0, 180)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.TileSize = 10
			tc.in.ShyTiles = 8
			if got := ChaseTarget(tc.p, tc.in); got != tc.want {
				t.Fatalf("ChaseTarget(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestTargetByState(t *testing.T) {
	player := testPlayer(geom.V(55, 35))
	g := NewGhost(Opportunist, geom.V(15, 15), geom.V(0, 40), testGhostConfig())
	if got := g.Target(player, nil, 10); got != g.Home {
		t.Fatalf("scatter should target home, got %v", got)
	}
	g.EnterEaten()
	if got := g.Target(player, nil, 10); got != g.Spawn {
		t.Fatalf("eaten should target spawn, got %v", got)
	}
}

func TestParsePersonality(t *testing.T) {
	for _, p := range Personalities {
		got, ok := ParsePersonality(p.String())
		if !ok || got != p {
			t.Fatalf("ParsePersonality(%q) = %v,%v", p.String(), got, ok)
		}
	}
	if _, ok := ParsePersonality("clyde"); ok {
		t.Fatalf("unexpected personality accepted")
	}
}
