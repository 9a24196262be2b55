package entity

import "github.com/vovakirdan/coastrun/internal/core"

// walker is the shared body of knockable NPCs: constant horizontal motion
// until knocked down, then a fixed dwell before removal.
type walker struct {
	X, Y    float64
	Dir     int
	speed   float64
	halfW   float64
	halfH   float64
	dwell   float64
	knocked Phase[bool]
	alive   bool
	anim    float64
}

func (w *walker) update(dt float64) {
	w.anim += dt
	if w.knocked.State {
		w.knocked.Tick(dt)
		if w.knocked.Done(w.dwell) {
			w.alive = false
		}
		return
	}
	w.X += float64(w.Dir) * w.speed * dt
}

func (w *walker) KnockDown() bool {
	if w.knocked.State || !w.alive {
		return false
	}
	w.knocked.Set(true)
	return true
}

func (w *walker) Knocked() bool { return w.knocked.State }

func (w *walker) AABB() core.AABB {
	return core.NewAABB(w.X, w.Y+w.halfH, w.halfW, w.halfH)
}

func (w *walker) Alive() bool     { return w.alive }
func (w *walker) WorldX() float64 { return w.X }

// Jogger runs steadily leftward toward the player.
type Jogger struct {
	walker
}

// NewJogger creates a jogger at x. dwell is the knocked-down time before removal.
func NewJogger(x, speed, dwell float64) *Jogger {
	return &Jogger{walker{X: x, Dir: -1, speed: speed, halfW: 12, halfH: 30, dwell: dwell, alive: true}}
}

// Update implements Entity.
func (j *Jogger) Update(dt float64) { j.update(dt) }

// Sprite selects the current animation frame.
func (j *Jogger) Sprite() Sprite {
	if j.Knocked() {
		return Sprite{Name: "jogger_down"}
	}
	return Sprite{Name: "jogger", Frame: int(j.anim*6) % 2, Flip: true}
}

// Draw implements Drawable.
func (j *Jogger) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, j.Sprite(), j.X, j.Y)
}

// Skater rolls fast in either direction.
type Skater struct {
	walker
}

// NewSkater creates a skater at x moving in dir (-1 or 1).
func NewSkater(x float64, dir int, speed, dwell float64) *Skater {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return &Skater{walker{X: x, Dir: dir, speed: speed, halfW: 14, halfH: 28, dwell: dwell, alive: true}}
}

// Update implements Entity.
func (s *Skater) Update(dt float64) { s.update(dt) }

// Sprite selects the current animation frame.
func (s *Skater) Sprite() Sprite {
	if s.Knocked() {
		return Sprite{Name: "skater_down", Flip: s.Dir < 0}
	}
	return Sprite{Name: "skater", Frame: int(s.anim*4) % 2, Flip: s.Dir < 0}
}

// Draw implements Drawable.
func (s *Skater) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, s.Sprite(), s.X, s.Y)
}

// Bird flies leftward across the sky. It is decorative.
type Bird struct {
	X, Y  float64
	speed float64
	anim  float64
	alive bool
}

// NewBird creates a bird at (x, y).
func NewBird(x, y, speed float64) *Bird {
	return &Bird{X: x, Y: y, speed: speed, alive: true}
}

// Update implements Entity.
func (b *Bird) Update(dt float64) {
	b.anim += dt
	b.X -= b.speed * dt
}

// AABB implements Entity. Birds never collide.
func (b *Bird) AABB() core.AABB { return zeroBox(b.X) }

// Alive implements Entity.
func (b *Bird) Alive() bool { return b.alive }

// WorldX implements Entity.
func (b *Bird) WorldX() float64 { return b.X }

// Draw implements Drawable.
func (b *Bird) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, Sprite{Name: "bird", Frame: int(b.anim*5) % 2, Flip: true}, b.X, b.Y)
}
