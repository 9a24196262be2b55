package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

// Level is the static content of one level, freshly generated.
type Level struct {
	Config    config.LevelConfig
	Layout    Layout
	Obstacles []*entity.Obstacle
	Pickups   []*entity.Pickup
	Hazards   []*entity.Hazard
	Markers   []float64
}

// Build generates the obstacles, pickups and hazards of a level.
func Build(rng *rand.Rand, cfg config.RunnerConfig, lc config.LevelConfig) (*Level, error) {
	hazards := make([]*entity.Hazard, 0, len(lc.Hazards))
	for _, h := range lc.Hazards {
		kind, err := entity.ParseHazardKind(h.Kind)
		if err != nil {
			return nil, fmt.Errorf("world: level %d: %w", lc.Number, err)
		}
		hazards = append(hazards, entity.NewHazard(kind, h.X))
	}

	layout := LayoutFor(cfg.Spawner, lc)
	placements := PlaceObstacles(rng, layout)
	obstacles := make([]*entity.Obstacle, 0, len(placements))
	for _, p := range placements {
		obstacles = append(obstacles, entity.NewObstacle(p.Kind, p.X, rng))
	}

	sp := cfg.Spawner
	pp := PlacePickups(rng, sp, layout)
	pp = ShiftAwayFromOverhead(pp, placements, sp.PickupTreeGap, sp.PickupShift, layout.Limit())
	pickups := make([]*entity.Pickup, 0, len(pp))
	for _, p := range pp {
		pickups = append(pickups, entity.NewPickup(p.Kind, p.X))
	}

	return &Level{
		Config:    lc,
		Layout:    layout,
		Obstacles: obstacles,
		Pickups:   pickups,
		Hazards:   hazards,
		Markers:   append([]float64(nil), lc.Markers...),
	}, nil
}
