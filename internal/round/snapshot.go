package round

// Snapshot is a comparable copy of the observable round state, for HUDs and
// determinism checks.
type Snapshot struct {
	Tick          uint64
	Level         int
	Status        Status
	Paused        bool
	Score         int
	PowerTicks    int
	DotsRemaining int
	Player        ActorSnapshot
	Ghosts        [4]GhostSnapshot
}

type ActorSnapshot struct {
	X, Y float64
	Dir  string
}

type GhostSnapshot struct {
	ActorSnapshot
	Personality string
	State       string
}

func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          r.tick,
		Level:         r.level,
		Status:        r.status,
		Paused:        r.paused,
		Score:         r.player.Score,
		PowerTicks:    r.player.PowerTicks,
		DotsRemaining: r.maze.CountRemaining(),
		Player: ActorSnapshot{
			X:   r.player.Pos.X,
			Y:   r.player.Pos.Y,
			Dir: r.player.Dir.String(),
		},
	}
	for i, g := range r.ghosts {
		s.Ghosts[i] = GhostSnapshot{
			ActorSnapshot: ActorSnapshot{X: g.Pos.X, Y: g.Pos.Y, Dir: g.Dir.String()},
			Personality:   g.Personality.String(),
			State:         g.State.String(),
		}
	}
	return s
}
