package input

// Role is a logical input independent of the platform key that produced it
type Role uint8

const (
	RoleUp Role = iota
	RoleDown
	RoleLeft
	RoleRight
	RoleFireUp    // w
	RoleFireLeft  // a
	RoleFireDown  // s
	RoleFireRight // d

	roleCount
)

var roleNames = [roleCount]string{"up", "down", "left", "right", "w", "a", "s", "d"}

func (r Role) String() string {
	if r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// Hold is a per-frame snapshot of held roles
type Hold [roleCount]bool

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// axis returns pos - neg as -1, 0 or 1
func (h Hold) axis(neg, pos Role) float64 {
	return b2f(h[pos]) - b2f(h[neg])
}

// Move returns the unscaled movement direction from the arrow roles
func (h Hold) Move() (float64, float64) {
	return h.axis(RoleLeft, RoleRight), h.axis(RoleUp, RoleDown)
}

// Firing reports whether the fire roles resolve to a non-zero direction
// Opposing keys on the same axis cancel
func (h Hold) Firing() bool {
	return h[RoleFireLeft] != h[RoleFireRight] || h[RoleFireDown] != h[RoleFireUp]
}

// FireDirection returns the unscaled fire direction from the wasd roles
func (h Hold) FireDirection() (float64, float64) {
	return h.axis(RoleFireLeft, RoleFireRight), h.axis(RoleFireUp, RoleFireDown)
}
