package engine

// Pool is an ordered entity collection that tolerates removal while it is
// being traversed. Remove tombstones an entry; Compact drops tombstones while
// keeping order. Iteration skips tombstoned entries, so removing any entry
// (the current one or another) never skips or repeats a live one
type Pool[T any] struct {
	items []T
	dead  []bool
	live  int
}

// NewPool creates a pool with capacity hint n
func NewPool[T any](n int) *Pool[T] {
	return &Pool[T]{
		items: make([]T, 0, n),
		dead:  make([]bool, 0, n),
	}
}

// Len returns the number of live entries
func (p *Pool[T]) Len() int {
	return p.live
}

// Add appends an entry
func (p *Pool[T]) Add(v T) {
	p.items = append(p.items, v)
	p.dead = append(p.dead, false)
	p.live++
}

// Remove tombstones slot i; removing twice is a no-op
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= len(p.items) || p.dead[i] {
		return
	}
	p.dead[i] = true
	p.live--
}

// Alive reports whether slot i holds a live entry
func (p *Pool[T]) Alive(i int) bool {
	return i >= 0 && i < len(p.items) && !p.dead[i]
}

// Each visits live entries in order until fn returns false
// Entries added during the visit are not visited
func (p *Pool[T]) Each(fn func(i int, v *T) bool) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if p.dead[i] {
			continue
		}
		if !fn(i, &p.items[i]) {
			return
		}
	}
}

// RemoveOldest tombstones the first live entry
func (p *Pool[T]) RemoveOldest() {
	for i := range p.items {
		if !p.dead[i] {
			p.Remove(i)
			return
		}
	}
}

// Compact drops tombstoned slots, preserving order
func (p *Pool[T]) Compact() {
	if p.live == len(p.items) {
		return
	}
	w := 0
	for r := range p.items {
		if p.dead[r] {
			continue
		}
		p.items[w] = p.items[r]
		p.dead[w] = false
		w++
	}
	var zero T
	for i := w; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:w]
	p.dead = p.dead[:w]
}

// Items returns a copy of the live entries in order
func (p *Pool[T]) Items() []T {
	out := make([]T, 0, p.live)
	p.Each(func(_ int, v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// Clear removes everything
func (p *Pool[T]) Clear() {
	p.items = p.items[:0]
	p.dead = p.dead[:0]
	p.live = 0
}

// Update runs one frame over the pool: for each live entry in order, move it,
// then test collide (nil skips the test). A true result removes the entry and
// skips drawing; otherwise draw it. Tombstones are compacted afterwards
func Update[T any](p *Pool[T], move func(*T), collide func(i int, v *T) bool, draw func(*T)) {
	p.Each(func(i int, v *T) bool {
		move(v)
		if collide != nil && collide(i, v) {
			p.Remove(i)
			return true
		}
		draw(v)
		return true
	})
	p.Compact()
}
