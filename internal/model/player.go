// Package model holds the game entities the RPG overlay reads and mutates.
// The host game owns the authoritative state; these are the overlay's
// in-memory views that skill callbacks act on.
package model

import (
	"errors"
	"fmt"
	"time"
)

const defaultMaxHealth = 100

// Player is the overlay's view of a connected player.
//
// Not safe for concurrent use: the host mutates players on the
// game-simulation goroutine only.
type Player struct {
	objectID uint32
	name     string

	health    int32
	maxHealth int32
	armor     int32

	jumpBoost  float64 // multiplier applied to jump velocity, 1.0 = none
	blindUntil time.Time
}

// NewPlayer creates a player view with full default health.
func NewPlayer(objectID uint32, name string) (*Player, error) {
	if objectID == 0 {
		return nil, errors.New("player object ID must not be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("player %d: empty name", objectID)
	}
	return &Player{
		objectID:  objectID,
		name:      name,
		health:    defaultMaxHealth,
		maxHealth: defaultMaxHealth,
		jumpBoost: 1.0,
	}, nil
}

// ObjectID returns the player's unique object ID.
func (p *Player) ObjectID() uint32 { return p.objectID }

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Health returns the current health.
func (p *Player) Health() int32 { return p.health }

// MaxHealth returns the base health ceiling. Skills may push current
// health above it (bonus health), so Health() > MaxHealth() is valid.
func (p *Player) MaxHealth() int32 { return p.maxHealth }

// AddHealth changes health by delta. Health never drops below zero.
func (p *Player) AddHealth(delta int32) {
	p.health += delta
	if p.health < 0 {
		p.health = 0
	}
}

// SetHealth sets health directly. Negative values are clamped to zero.
func (p *Player) SetHealth(health int32) {
	if health < 0 {
		health = 0
	}
	p.health = health
}

// IsAlive returns true while the player has health left.
func (p *Player) IsAlive() bool { return p.health > 0 }

// Armor returns the current armor value.
func (p *Player) Armor() int32 { return p.armor }

// AddArmor changes armor by delta. Armor never drops below zero.
func (p *Player) AddArmor(delta int32) {
	p.armor += delta
	if p.armor < 0 {
		p.armor = 0
	}
}

// JumpBoost returns the jump velocity multiplier (1.0 = unmodified).
func (p *Player) JumpBoost() float64 { return p.jumpBoost }

// SetJumpBoost sets the jump velocity multiplier. Values below 1.0 are
// clamped: skills only ever boost, never slow.
func (p *Player) SetJumpBoost(boost float64) {
	if boost < 1.0 {
		boost = 1.0
	}
	p.jumpBoost = boost
}

// BlindFor blinds the player for the given duration, extending any
// remaining blindness if the new end is later.
func (p *Player) BlindFor(d time.Duration) {
	until := time.Now().Add(d)
	if until.After(p.blindUntil) {
		p.blindUntil = until
	}
}

// IsBlinded returns true while a blind effect is active.
func (p *Player) IsBlinded() bool {
	return time.Now().Before(p.blindUntil)
}
