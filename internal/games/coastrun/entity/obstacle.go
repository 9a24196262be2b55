package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/coastrun/internal/core"
)

// ObstacleKind is the closed set of obstacle types.
type ObstacleKind int

const (
	Rock ObstacleKind = iota
	Bench
	TrashCan
	Pothole
	Cooler
	BeachBall
	Tree
	Umbrella
)

// GroundKinds are obstacles standing on the ground.
var GroundKinds = []ObstacleKind{Rock, Bench, TrashCan, Pothole, Cooler, BeachBall}

// OverheadKinds are obstacles whose collidable part is a canopy.
var OverheadKinds = []ObstacleKind{Tree, Umbrella}

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case Rock:
		return "rock"
	case Bench:
		return "bench"
	case TrashCan:
		return "trashcan"
	case Pothole:
		return "pothole"
	case Cooler:
		return "cooler"
	case BeachBall:
		return "beachball"
	case Tree:
		return "tree"
	case Umbrella:
		return "umbrella"
	default:
		return "unknown"
	}
}

// Overhead reports whether only the canopy of the obstacle collides.
func (k ObstacleKind) Overhead() bool {
	return k == Tree || k == Umbrella
}

// extent is a collision box relative to the obstacle's ground anchor.
type extent struct {
	offY   float64 // Box center above ground
	halfW  float64
	halfH  float64
	leaves int // Extra leaves on top of the minimum when shaken
}

func (k ObstacleKind) extent() extent {
	switch k {
	case Rock:
		return extent{offY: 14, halfW: 20, halfH: 14}
	case Bench:
		return extent{offY: 16, halfW: 36, halfH: 16}
	case TrashCan:
		return extent{offY: 24, halfW: 14, halfH: 24}
	case Pothole:
		return extent{offY: 2, halfW: 26, halfH: 4}
	case Cooler:
		return extent{offY: 14, halfW: 18, halfH: 14}
	case BeachBall:
		return extent{offY: 12, halfW: 12, halfH: 12}
	case Tree:
		return extent{offY: 150, halfW: 50, halfH: 35, leaves: 6}
	case Umbrella:
		return extent{offY: 110, halfW: 40, halfH: 14, leaves: 2}
	default:
		return extent{}
	}
}

// ObstacleState is the animation sub-state of an obstacle.
type ObstacleState int

const (
	ObstacleIdle ObstacleState = iota
	ObstacleKnockedFalling
	ObstacleKnockedSpilled
	ObstacleFallingIn
	ObstacleEyesBlinking
	ObstacleShaking
	ObstacleRolling
)

// Obstacle animation timings in seconds.
const (
	knockFallTime  = 0.2
	fallInTime     = 0.33
	eyesBlinkTime  = 1.27
	eyesToggleTime = 0.25
	shakeTime      = 0.6
	minLeaves      = 8
	ballFriction   = 0.35 // Share of ball speed left after one second
	ballRestSpeed  = 10
)

// Obstacle is a static obstacle placed by the spawner.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64

	phase     Phase[ObstacleState]
	alive     bool
	knocked   bool
	eyesOpen  bool
	eyesTimer float64
	vx        float64
	roll      float64
	leaves    []*Leaf
	shape     []string
}

// NewObstacle creates an obstacle on the ground at x. Rocks get a unique
// mutated shape drawn from rng.
func NewObstacle(kind ObstacleKind, x float64, rng *rand.Rand) *Obstacle {
	o := &Obstacle{Kind: kind, X: x, alive: true}
	if kind == Rock {
		o.shape = MutateRock(rng)
	}
	return o
}

// Update advances the obstacle's animation.
func (o *Obstacle) Update(dt float64) {
	o.phase.Tick(dt)
	switch o.Kind {
	case TrashCan:
		if o.phase.Is(ObstacleKnockedFalling) && o.phase.Done(knockFallTime) {
			o.phase.Set(ObstacleKnockedSpilled)
		}
	case Pothole:
		o.updatePothole(dt)
	case Tree, Umbrella:
		if o.phase.Is(ObstacleShaking) && o.phase.Done(shakeTime) {
			o.phase.Set(ObstacleIdle)
		}
	case BeachBall:
		if o.phase.Is(ObstacleRolling) {
			o.X += o.vx * dt
			o.roll += o.vx * dt / 12
			o.vx *= math.Pow(ballFriction, dt)
			if math.Abs(o.vx) < ballRestSpeed {
				o.vx = 0
				o.phase.Set(ObstacleIdle)
			}
		}
	case Rock, Bench, Cooler:
	}

	live := o.leaves[:0]
	for _, l := range o.leaves {
		l.Update(dt)
		if l.Alive() {
			live = append(live, l)
		}
	}
	o.leaves = live
}

func (o *Obstacle) updatePothole(dt float64) {
	switch o.phase.State {
	case ObstacleFallingIn:
		if o.phase.Done(fallInTime) {
			o.phase.Set(ObstacleEyesBlinking)
			o.eyesOpen = true
			o.eyesTimer = 0
		}
	case ObstacleEyesBlinking:
		o.eyesTimer += dt
		if o.eyesTimer+timeEpsilon >= eyesToggleTime {
			o.eyesTimer = 0
			o.eyesOpen = !o.eyesOpen
		}
		if o.phase.Done(eyesBlinkTime) {
			o.phase.Set(ObstacleIdle)
			o.eyesOpen = false
		}
	}
}

// AABB returns the collidable box. Overhead kinds collide only at the canopy;
// knocked trash cans and destroyed obstacles return an empty box.
func (o *Obstacle) AABB() core.AABB {
	if o.knocked || !o.alive {
		return zeroBox(o.X)
	}
	e := o.Kind.extent()
	return core.NewAABB(o.X, o.Y+e.offY, e.halfW, e.halfH)
}

// KnockOver tips a trash can over. It returns false for other kinds and for
// a can that is already down.
func (o *Obstacle) KnockOver() bool {
	if o.Kind != TrashCan || o.knocked {
		return false
	}
	o.knocked = true
	o.phase.Set(ObstacleKnockedFalling)
	return true
}

// FallIn starts the pothole animation. It returns false if one is playing.
func (o *Obstacle) FallIn() bool {
	if o.Kind != Pothole || !o.phase.Is(ObstacleIdle) {
		return false
	}
	o.phase.Set(ObstacleFallingIn)
	return true
}

// Shake rustles a tree or umbrella and drops leaves from the canopy.
func (o *Obstacle) Shake(rng *rand.Rand) bool {
	if !o.Kind.Overhead() {
		return false
	}
	o.phase.Set(ObstacleShaking)
	e := o.Kind.extent()
	n := minLeaves + rng.Intn(e.leaves+1)
	for i := 0; i < n; i++ {
		o.leaves = append(o.leaves, NewLeaf(
			o.X+(rng.Float64()*2-1)*e.halfW,
			o.Y+e.offY+(rng.Float64()*2-1)*e.halfH,
			rng,
		))
	}
	return true
}

// Kick sends a beach ball rolling with velocity vx.
func (o *Obstacle) Kick(vx float64) bool {
	if o.Kind != BeachBall || !o.alive {
		return false
	}
	o.vx = vx
	o.phase.Set(ObstacleRolling)
	return true
}

// Kicked reports whether the obstacle is a rolling ball.
func (o *Obstacle) Kicked() bool {
	return o.Kind == BeachBall && o.phase.Is(ObstacleRolling)
}

// Destroy removes the obstacle at the end of the frame.
func (o *Obstacle) Destroy() bool {
	if !o.alive {
		return false
	}
	o.alive = false
	return true
}

// Knocked reports whether the obstacle lost its collision box.
func (o *Obstacle) Knocked() bool { return o.knocked }

// State returns the animation sub-state.
func (o *Obstacle) State() ObstacleState { return o.phase.State }

// EyesOpen reports whether the pothole eyes are showing.
func (o *Obstacle) EyesOpen() bool { return o.eyesOpen }

// Leaves returns the falling leaf particles.
func (o *Obstacle) Leaves() []*Leaf { return o.leaves }

// Shape returns the rock bitmap, nil for other kinds.
func (o *Obstacle) Shape() []string { return o.shape }

// Alive implements Entity.
func (o *Obstacle) Alive() bool { return o.alive }

// WorldX implements Entity.
func (o *Obstacle) WorldX() float64 { return o.X }

// Sprite selects the current animation frame.
func (o *Obstacle) Sprite() Sprite {
	s := Sprite{Name: o.Kind.String()}
	switch o.Kind {
	case TrashCan:
		switch o.phase.State {
		case ObstacleKnockedFalling:
			s.Frame = 1
		case ObstacleKnockedSpilled:
			s.Frame = 2
		}
	case Pothole:
		switch {
		case o.phase.Is(ObstacleFallingIn):
			s.Frame = 1
		case o.phase.Is(ObstacleEyesBlinking) && o.eyesOpen:
			s.Frame = 2
		}
	case Tree, Umbrella:
		if o.phase.Is(ObstacleShaking) {
			s.Frame = 1 + int(o.phase.Elapsed*20)%2
		}
	case BeachBall:
		s.Frame = int(math.Abs(o.roll)) % 4
	case Rock:
		s.Art = o.shape
	case Bench, Cooler:
	}
	return s
}

// Draw implements Drawable. Leaves are drawn on top.
func (o *Obstacle) Draw(c Canvas, cameraOffset float64) {
	if !o.alive {
		return
	}
	blit(c, cameraOffset, o.Sprite(), o.X, o.Y)
	for _, l := range o.leaves {
		l.Draw(c, cameraOffset)
	}
}
