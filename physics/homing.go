package physics

import (
	"math"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/vmath"
)

// HomingProfile defines the pulsing approach speed
// speed(d) = BaseSpeed + (1 + sin(d/Wavelength)) * Pulse
type HomingProfile struct {
	BaseSpeed  float64
	Pulse      float64
	Wavelength float64
}

// DefaultHoming is the baddie approach profile
var DefaultHoming = HomingProfile{
	BaseSpeed:  constants.HomingBaseSpeed,
	Pulse:      constants.HomingPulse,
	Wavelength: constants.HomingWavelength,
}

// Speed returns the approach speed at distance d
// Bounded to [BaseSpeed, BaseSpeed+2*Pulse]
func (p *HomingProfile) Speed(d float64) float64 {
	return p.BaseSpeed + (1+math.Sin(d/p.Wavelength))*p.Pulse
}

// Vector returns the per-frame displacement moving from (x, y) toward (targetX, targetY)
// Each axis carries sign(delta) * speed * |delta|/dist, weighting the larger gap
// Coincident points return (0, 0)
func (p *HomingProfile) Vector(x, y, targetX, targetY float64) (float64, float64) {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}

	speed := p.Speed(dist)
	xadj := math.Abs(dx) / dist
	yadj := math.Abs(dy) / dist
	return vmath.Sign(dx) * speed * xadj, vmath.Sign(dy) * speed * yadj
}

// ApplyHoming moves r one frame toward target's origin
func ApplyHoming(r *vmath.Rect, target vmath.Rect, profile *HomingProfile) {
	vx, vy := profile.Vector(r.X, r.Y, target.X, target.Y)
	r.Move(vx, vy)
}
