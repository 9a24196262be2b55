// Package world lays out a coastrun level: procedural obstacle and pickup
// placement with exclusion zones, the follow camera and level assembly.
package world

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

// Zone is a world-x interval that must stay obstacle-free.
type Zone struct {
	Start, End float64
}

// Contains reports whether x lies inside the zone, edges included.
func (z Zone) Contains(x float64) bool {
	return x >= z.Start && x <= z.End
}

// Layout parameterizes obstacle placement for one level.
type Layout struct {
	Extent         float64
	StartBuffer    float64
	EndBuffer      float64
	MinSpacing     float64
	MaxSpacing     float64
	OverheadChance float64
	ComboChance    float64
	ComboMin       float64
	ComboMax       float64
	Exclusions     []Zone
}

// Limit is the last world-x an obstacle may occupy.
func (l Layout) Limit() float64 {
	return l.Extent - l.EndBuffer
}

// LayoutFor builds the layout of a level. Dog markers, hazards and the finish
// flag each reserve an exclusion zone around them.
func LayoutFor(sp config.RunnerSpawner, lc config.LevelConfig) Layout {
	l := Layout{
		Extent:         lc.Length,
		StartBuffer:    sp.StartBuffer,
		EndBuffer:      sp.EndBuffer,
		MinSpacing:     sp.MinSpacing,
		MaxSpacing:     sp.MaxSpacing,
		OverheadChance: sp.OverheadChance,
		ComboChance:    sp.ComboChance,
		ComboMin:       sp.ComboMin,
		ComboMax:       sp.ComboMax,
	}
	for _, m := range lc.Markers {
		l.Exclusions = append(l.Exclusions, Zone{m - sp.MarkerClearance, m + sp.MarkerClearance})
	}
	for _, h := range lc.Hazards {
		l.Exclusions = append(l.Exclusions, Zone{h.X - sp.MarkerClearance, h.X + sp.MarkerClearance})
	}
	if lc.FlagX > 0 {
		l.Exclusions = append(l.Exclusions, Zone{lc.FlagX - sp.FlagClearance, lc.FlagX + sp.FlagClearance})
	}
	sort.Slice(l.Exclusions, func(i, j int) bool { return l.Exclusions[i].Start < l.Exclusions[j].Start })
	return l
}

// clear shifts x past every exclusion zone that contains it. It returns false
// if the shifted position runs beyond the layout limit.
func (l Layout) clear(x float64) (float64, bool) {
	for moved := true; moved; {
		moved = false
		for _, z := range l.Exclusions {
			if z.Contains(x) {
				x = z.End + 1
				moved = true
			}
		}
	}
	return x, x <= l.Limit()
}

// Placement is an obstacle position chosen by the spawner.
type Placement struct {
	Kind entity.ObstacleKind
	X    float64
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func pick(rng *rand.Rand, kinds []entity.ObstacleKind) entity.ObstacleKind {
	return kinds[rng.Intn(len(kinds))]
}

// PlaceObstacles walks the level from the start buffer in random strides and
// drops a ground or overhead obstacle at each stop, sometimes followed closely
// by a second ground obstacle. Positions are ascending and never fall inside
// an exclusion zone or outside [StartBuffer, Extent-EndBuffer].
func PlaceObstacles(rng *rand.Rand, l Layout) []Placement {
	var out []Placement
	x := l.StartBuffer
	for {
		x += uniform(rng, l.MinSpacing, l.MaxSpacing)
		if x > l.Limit() {
			break
		}
		pos, ok := l.clear(x)
		if !ok {
			break
		}
		x = pos

		kind := pick(rng, entity.GroundKinds)
		if rng.Float64() < l.OverheadChance {
			kind = pick(rng, entity.OverheadKinds)
		}
		out = append(out, Placement{Kind: kind, X: x})

		if rng.Float64() < l.ComboChance {
			pos, ok := l.clear(x + uniform(rng, l.ComboMin, l.ComboMax))
			if ok {
				x = pos
				out = append(out, Placement{Kind: pick(rng, entity.GroundKinds), X: x})
			}
		}
	}
	return out
}

// PickupPlacement is a pickup position chosen by the spawner.
type PickupPlacement struct {
	Kind entity.PickupKind
	X    float64
}

// PlacePickups spreads pickups along the level with wide random spacing.
func PlacePickups(rng *rand.Rand, sp config.RunnerSpawner, l Layout) []PickupPlacement {
	var out []PickupPlacement
	x := l.StartBuffer
	for {
		x += uniform(rng, sp.PickupMinSpacing, sp.PickupMaxSpacing)
		if x > l.Limit() {
			break
		}
		pos, ok := l.clear(x)
		if !ok {
			break
		}
		x = pos

		kind := entity.PickupMate
		switch r := rng.Float64(); {
		case r < sp.HeartChance:
			kind = entity.PickupHeart
		case r < sp.HeartChance+sp.AmmoChance:
			kind = entity.PickupAmmo
		}
		out = append(out, PickupPlacement{Kind: kind, X: x})
	}
	return out
}

// ShiftAwayFromOverhead moves pickups that sit within gap of a tree or
// umbrella forward by shift, so they never hide inside a canopy. Pickups that
// would end up past limit are dropped.
func ShiftAwayFromOverhead(pickups []PickupPlacement, obstacles []Placement, gap, shift, limit float64) []PickupPlacement {
	out := pickups[:0]
	for _, p := range pickups {
		for _, o := range obstacles {
			if !o.Kind.Overhead() {
				continue
			}
			if d := p.X - o.X; d > -gap && d < gap {
				p.X += shift
			}
		}
		if p.X <= limit {
			out = append(out, p)
		}
	}
	return out
}
