package engine

import (
	"math"

	"github.com/lixenwraith/zombies/component"
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/input"
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/render"
	"github.com/lixenwraith/zombies/vmath"
)

// Options tunes a Game. Use DefaultOptions and override fields
type Options struct {
	Width, Height float64

	// SpawnChance is the per-frame roll threshold; a roll above it spawns a baddie
	SpawnChance float64

	// BaddieCap bounds the baddie pool by dropping the oldest on spawn; <= 0 disables
	BaddieCap int
}

// DefaultOptions returns the standard arcade tuning
func DefaultOptions() Options {
	return Options{
		Width:       constants.CanvasWidth,
		Height:      constants.CanvasHeight,
		SpawnChance: constants.SpawnChance,
		BaddieCap:   constants.BaddieCap,
	}
}

// Game owns the simulation state and advances it one frame at a time
// Not safe for concurrent use; input arrives as a Hold snapshot
type Game struct {
	State *State

	opts     Options
	rng      Rand
	homing   *physics.HomingProfile
	handlers []EventHandler
}

// NewGame creates a game with a fresh state
func NewGame(opts Options, rng Rand) *Game {
	return &Game{
		State:  NewState(),
		opts:   opts,
		rng:    rng,
		homing: &physics.DefaultHoming,
	}
}

// Options returns the tuning in effect
func (g *Game) Options() Options {
	return g.opts
}

// RegisterEventHandler subscribes h to gameplay events
func (g *Game) RegisterEventHandler(h EventHandler) {
	g.handlers = append(g.handlers, h)
}

func (g *Game) emit(ev Event) {
	for _, h := range g.handlers {
		h.HandleEvent(ev)
	}
}

// Frame advances the simulation by one tick and draws it onto s
// Order: clear, controls and player, bullets, spawn roll, baddies, particles, HUD, banner
func (g *Game) Frame(hold input.Hold, s render.Surface) {
	st := g.State

	s.Clear(render.RGBBlack)

	if st.Alive() {
		g.applyControls(hold)
		render.DrawPlayer(s, &st.Player)
	}

	g.updateBullets(s)

	if g.rng.Float64() > g.opts.SpawnChance {
		g.addBaddie()
	}

	g.updateBaddies(s)
	g.updateParticles(s)

	render.DrawHUD(s, st.Score, st.Health, st.MaxHealth, g.opts.Height)
	if st.GameOver() {
		render.DrawGameOver(s, g.opts.Width, g.opts.Height)
	}

	st.FrameNumber++
}

// applyControls moves the player and fires; movement and fire roles are independent
func (g *Game) applyControls(hold input.Hold) {
	mx, my := hold.Move()
	g.State.Player.Move(mx*constants.PlayerSpeed, my*constants.PlayerSpeed)

	if hold.Firing() {
		g.fire(hold.FireDirection())
	}
}

// fire advances the cooldown counter and creates a bullet when it has run
// out and the bullet cap allows. Reports whether a bullet was created
func (g *Game) fire(dx, dy float64) bool {
	st := g.State

	ready := st.LastBullet > constants.FireCooldown
	st.LastBullet++
	if !ready || st.Bullets.Len() >= constants.MaxBullets {
		return false
	}

	st.Bullets.Add(component.Bullet{
		Rect: vmath.Rect{
			X: st.Player.X + constants.BulletOffset,
			Y: st.Player.Y + constants.BulletOffset,
			W: constants.BulletSize,
			H: constants.BulletSize,
		},
		VX: dx * constants.BulletSpeed,
		VY: dy * constants.BulletSpeed,
	})
	st.LastBullet = 0
	g.emit(EventShot)
	return true
}

func (g *Game) offscreen(r vmath.Rect) bool {
	return vmath.Outside(r, g.opts.Width, g.opts.Height)
}

func (g *Game) updateBullets(s render.Surface) {
	Update(g.State.Bullets,
		func(b *component.Bullet) { b.Move(b.VX, b.VY) },
		func(_ int, b *component.Bullet) bool {
			return g.collideWithBaddies(b) || g.offscreen(b.Rect)
		},
		func(b *component.Bullet) { render.DrawBullet(s, b) },
	)
}

// collideWithBaddies destroys the first baddie in pool order that the bullet touches
func (g *Game) collideWithBaddies(b *component.Bullet) bool {
	st := g.State
	hit := false
	st.Baddies.Each(func(j int, z *component.Baddie) bool {
		if !vmath.Intersect(b.Rect, z.Rect) {
			return true
		}
		st.Baddies.Remove(j)
		g.explode(z.Rect)
		st.Score++
		g.emit(EventBaddieKilled)
		hit = true
		return false
	})
	return hit
}

// addBaddie spawns one baddie on a random screen edge
func (g *Game) addBaddie() {
	st := g.State

	if g.opts.BaddieCap > 0 {
		for st.Baddies.Len() >= g.opts.BaddieCap {
			st.Baddies.RemoveOldest()
		}
	}

	bx := math.Floor(g.rng.Float64() * g.opts.Width)
	by := math.Floor(g.rng.Float64() * g.opts.Height)
	switch r := g.rng.Float64(); {
	case r < 0.25:
		bx = 0
	case r < 0.5:
		bx = g.opts.Width - constants.BaddieSize
	case r < 0.75:
		by = 0
	default:
		by = g.opts.Height - constants.BaddieSize
	}

	sprite := int(g.rng.Float64() * constants.SpriteCount)
	if sprite >= constants.SpriteCount {
		sprite = constants.SpriteCount - 1
	}

	st.Baddies.Add(component.Baddie{
		Rect: vmath.Rect{
			X: bx,
			Y: by,
			W: constants.BaddieSize,
			H: constants.BaddieSize,
		},
		Sprite: sprite,
	})
}

func (g *Game) updateBaddies(s render.Surface) {
	st := g.State
	Update(st.Baddies,
		func(b *component.Baddie) { physics.ApplyHoming(&b.Rect, st.Player.Rect, g.homing) },
		g.collideWithPlayer,
		func(b *component.Baddie) {
			b.Frame = (b.Frame + 1) % constants.AnimationCycle
			render.DrawBaddie(s, b)
		},
	)
}

// collideWithPlayer costs one health per touching baddie while the player lives
func (g *Game) collideWithPlayer(_ int, b *component.Baddie) bool {
	st := g.State
	if !st.Alive() || !vmath.Intersect(b.Rect, st.Player.Rect) {
		return false
	}
	g.explode(b.Rect)
	st.Health--
	g.emit(EventPlayerHit)
	if st.Health == 0 {
		g.emit(EventGameOver)
	}
	return true
}

func (g *Game) updateParticles(s render.Surface) {
	Update(g.State.Particles,
		func(p *component.Particle) { p.Move(p.VX, p.VY) },
		func(_ int, p *component.Particle) bool { return g.offscreen(p.Rect) },
		func(p *component.Particle) {
			fadeParticle(p)
			render.DrawParticle(s, p)
		},
	)
}

// fadeParticle decays opacity, snapping faint particles to invisible
func fadeParticle(p *component.Particle) {
	p.Alpha *= constants.ParticleFade
	if p.Alpha < constants.ParticleAlphaFloor {
		p.Alpha = 0
	}
}

// explode bursts particles from the center of r
func (g *Game) explode(r vmath.Rect) {
	cx, cy := r.Center()
	for i := 0; i < constants.ExplosionParticles; i++ {
		vx := (g.rng.Float64() - 0.5) * constants.ParticleSpread
		vy := (g.rng.Float64() - 0.5) * constants.ParticleSpread
		g.State.Particles.Add(component.Particle{
			Rect: vmath.Rect{
				X: cx,
				Y: cy,
				W: constants.ParticleSize,
				H: constants.ParticleSize,
			},
			VX:    vx,
			VY:    vy,
			Alpha: constants.ParticleInitialAlpha,
		})
	}
}
