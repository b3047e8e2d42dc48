package entity

import (
	"errors"
	"fmt"

	"github.com/arkterm/arkterm/internal/core"
)

// ErrNotFound is returned by single-entity accessors when no live entity
// of the requested kind exists.
var ErrNotFound = errors.New("entity not found")

// Store owns every entity in a game session. Entities are kept both in a
// canonical insertion-order slice (for update and draw passes) and in
// per-kind homogeneous slices (so collision code gets concrete types
// without downcasting).
//
// Store is not safe for concurrent use; the game serializes access.
type Store struct {
	order []Entity

	balls   []*Ball
	paddles []*Paddle
	bricks  []*Brick
	bullets []*Bullet
	dots    []*LifeDot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add takes ownership of the entity and files it under its kind.
// It returns the entity for call-site chaining.
func (s *Store) Add(e Entity) Entity {
	s.order = append(s.order, e)
	switch v := e.(type) {
	case *Ball:
		s.balls = append(s.balls, v)
	case *Paddle:
		s.paddles = append(s.paddles, v)
	case *Brick:
		s.bricks = append(s.bricks, v)
	case *Bullet:
		s.bullets = append(s.bullets, v)
	case *LifeDot:
		s.dots = append(s.dots, v)
	default:
		panic(fmt.Sprintf("entity: unknown kind %v", e.Kind()))
	}
	return e
}

// Len returns the number of entities in the store, including ones marked
// destroyed but not yet refreshed away.
func (s *Store) Len() int { return len(s.order) }

// Balls returns the live ball group. The slice is owned by the store and
// valid until the next Add or Refresh.
func (s *Store) Balls() []*Ball { return s.balls }

// Paddles returns the live paddle group.
func (s *Store) Paddles() []*Paddle { return s.paddles }

// Bricks returns the live brick group.
func (s *Store) Bricks() []*Brick { return s.bricks }

// Bullets returns the live bullet group.
func (s *Store) Bullets() []*Bullet { return s.bullets }

// LifeDots returns the live life-marker group.
func (s *Store) LifeDots() []*LifeDot { return s.dots }

// Ball returns the single ball, or ErrNotFound if none exists. Games that
// keep one ball use this instead of indexing the group.
func (s *Store) Ball() (*Ball, error) {
	for _, b := range s.balls {
		if !b.Destroyed() {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: ball", ErrNotFound)
}

// Paddle returns the single paddle, or ErrNotFound if none exists.
func (s *Store) Paddle() (*Paddle, error) {
	for _, p := range s.paddles {
		if !p.Destroyed() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: paddle", ErrNotFound)
}

// AliveBricks counts bricks that still block the ball: settled, with hits
// remaining. Flung and destroyed bricks do not count, so a stage is clear
// the moment its last brick is launched.
func (s *Store) AliveBricks() int {
	n := 0
	for _, b := range s.bricks {
		if !b.Destroyed() && !b.Flung() && b.HitsLeft > 0 {
			n++
		}
	}
	return n
}

// Update advances every entity one tick in insertion order. Entities whose
// movement is externally choreographed (External true) are skipped.
func (s *Store) Update(w World) {
	for _, e := range s.order {
		if e.Destroyed() || e.External() {
			continue
		}
		e.Update(w)
	}
}

// Draw renders every live entity in insertion order, so later additions
// paint over earlier ones.
func (s *Store) Draw(dst *core.Screen) {
	for _, e := range s.order {
		if e.Destroyed() {
			continue
		}
		e.Draw(dst)
	}
}

// Refresh removes destroyed entities from the canonical order and from
// every kind group. Relative order of survivors is preserved. Calling
// Refresh with nothing destroyed is a no-op.
func (s *Store) Refresh() {
	s.order = compactEntities(s.order)
	s.balls = compact(s.balls)
	s.paddles = compact(s.paddles)
	s.bricks = compact(s.bricks)
	s.bullets = compact(s.bullets)
	s.dots = compact(s.dots)
}

// Clear drops every entity, destroyed or not.
func (s *Store) Clear() {
	s.order = nil
	s.balls = nil
	s.paddles = nil
	s.bricks = nil
	s.bullets = nil
	s.dots = nil
}

func compactEntities(in []Entity) []Entity {
	out := in[:0]
	for _, e := range in {
		if !e.Destroyed() {
			out = append(out, e)
		}
	}
	// Zero the tail so removed entities can be collected.
	for i := len(out); i < len(in); i++ {
		in[i] = nil
	}
	return out
}

func compact[E Entity](in []E) []E {
	out := in[:0]
	for _, e := range in {
		if !e.Destroyed() {
			out = append(out, e)
		}
	}
	var zero E
	for i := len(out); i < len(in); i++ {
		in[i] = zero
	}
	return out
}
