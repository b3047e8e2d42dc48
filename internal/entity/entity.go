// Package entity contains the game objects and the store that owns them.
//
// Every game object satisfies the Entity interface and is owned exclusively
// by a Store. Destruction is logical first (the destroyed flag) and physical
// later (Store.Refresh), so iteration and collision passes always see a
// stable entity set within a frame.
package entity

import (
	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/geom"
)

// Kind identifies a concrete entity variant. The set is closed: collision
// and query code dispatches over kinds, never over runtime type identity.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindBrick
	KindBullet
	KindLifeDot
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	case KindBullet:
		return "bullet"
	case KindLifeDot:
		return "lifedot"
	default:
		return "unknown"
	}
}

// World is the per-tick context entities update against: the playfield
// dimensions in cell units. Top is the y of the invisible top wall, below
// the HUD rows.
type World struct {
	Width  float64
	Height float64
	Top    float64
}

// Sounder receives gameplay sound cues. A nil Sounder disables audio.
type Sounder interface {
	WallBounce()
	BrickHit()
}

// Entity is the capability every game object implements.
type Entity interface {
	// Kind identifies the concrete variant.
	Kind() Kind

	// Bounds returns the shape used for collision tests.
	Bounds() geom.Bounds

	// Update advances the entity by one tick.
	Update(w World)

	// Draw renders the entity onto the screen buffer.
	Draw(dst *core.Screen)

	// Died reports whether the entity's end condition holds (ball below the
	// window, brick out of hits, bullet off-screen). It does not mutate.
	Died(w World) bool

	// Destroyed reports whether the entity is marked for removal.
	Destroyed() bool

	// Destroy marks the entity for removal at the next Store.Refresh.
	Destroy()

	// External reports whether an external choreography owns this entity's
	// per-tick movement. Entities with External true are SKIPPED by the
	// generic Store.Update pass.
	External() bool

	// SetExternal flips external-update ownership.
	SetExternal(v bool)

	// Stage returns the game stage the entity was created in.
	Stage() int
}

// Base carries the lifecycle flags shared by all entities. Embed it by
// pointer-receiver convention: concrete entities are always used as pointers.
type Base struct {
	destroyed bool
	external  bool
	stage     int
}

// Destroyed reports whether the entity is marked for removal.
func (b *Base) Destroyed() bool { return b.destroyed }

// Destroy marks the entity for removal at the next refresh.
func (b *Base) Destroy() { b.destroyed = true }

// External reports whether the generic update pass must skip this entity.
func (b *Base) External() bool { return b.external }

// SetExternal flips external-update ownership.
func (b *Base) SetExternal(v bool) { b.external = v }

// Stage returns the stage the entity was created in.
func (b *Base) Stage() int { return b.stage }

// SetStage records the stage the entity was created in.
func (b *Base) SetStage(n int) { b.stage = n }
