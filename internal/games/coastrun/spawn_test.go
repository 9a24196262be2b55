package coastrun

import (
	"testing"

	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

func TestNPCSpawnGates(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		overhead bool
		crowd    bool
		want     int
	}{
		{"spawns", 1, false, false, 1},
		{"tree on screen", 1, true, false, 0},
		{"crowded early level", 1, false, true, 1},
		{"crowded late level", 4, false, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, g, _ := emptyLevel(t, Options{StartLevel: tt.level})
			g.beagle = nil
			if tt.overhead {
				g.obstacles = []*entity.Obstacle{entity.NewObstacle(entity.Tree, g.camera.Offset+400, g.rng)}
			}
			if tt.crowd {
				g.joggers = []*entity.Jogger{entity.NewJogger(g.camera.Offset+500, 100, 3)}
			}
			g.npcTimer = 0
			g.spawnTimed(1.0 / 60)
			if got := len(g.joggers) + len(g.skaters); got != tt.want {
				t.Errorf("npcs = %d, want %d", got, tt.want)
			}
			if g.npcTimer <= 0 {
				t.Error("timer not rescheduled")
			}
		})
	}
}

func TestNoSkatersBeforeTheirLevel(t *testing.T) {
	_, g, _ := emptyLevel(t, Options{})
	for i := 0; i < 200; i++ {
		g.joggers = nil
		g.npcTimer = 0
		g.spawnTimed(1.0 / 60)
	}
	if len(g.skaters) != 0 {
		t.Errorf("%d skaters on level 1", len(g.skaters))
	}
}

func TestSkatersFromLevelTwo(t *testing.T) {
	_, g, _ := emptyLevel(t, Options{StartLevel: 2})
	for i := 0; i < 200 && len(g.skaters) == 0; i++ {
		g.joggers = nil
		g.npcTimer = 0
		g.spawnTimed(1.0 / 60)
	}
	if len(g.skaters) == 0 {
		t.Fatal("no skater in 200 spawns on level 2")
	}
}

func TestNoSpawnPastFlag(t *testing.T) {
	_, g, _ := emptyLevel(t, Options{})
	g.player.X = g.lc.FlagX - 100
	g.camera.Snap(g.player.X)
	g.npcTimer = 0
	g.spawnTimed(1.0 / 60)
	if len(g.joggers)+len(g.skaters) != 0 {
		t.Error("spawned an NPC beyond the flag")
	}
}

func TestBirdsOnInterval(t *testing.T) {
	_, g, _ := emptyLevel(t, Options{})
	g.birdTimer = 0
	g.npcTimer = 1e9
	steps := int(g.cfg.NPC.BirdInterval*60) + 1
	for i := 0; i < steps; i++ {
		g.spawnTimed(1.0 / 60)
	}
	if len(g.birds) != 1 {
		t.Errorf("birds = %d, want 1", len(g.birds))
	}
}
