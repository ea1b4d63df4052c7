// Package economy drives skill leveling. The skill package only prices
// transitions (UpgradeCost/DowngradeRefund) and stores the level; the
// transition guards live here, in the embedding: credit balance,
// max-level ceiling, and the level floor.
package economy

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/gorpg/internal/skill"
)

var (
	// ErrMaxLevel is returned when an upgrade would exceed the class ceiling.
	ErrMaxLevel = errors.New("skill is at max level")
	// ErrMinLevel is returned when downgrading a level-zero skill.
	ErrMinLevel = errors.New("skill is at level zero")
	// ErrInsufficientCredits is returned when the bank cannot cover the cost.
	ErrInsufficientCredits = errors.New("not enough credits")
)

// Bank holds a player's skill credits.
//
// Not safe for concurrent use; leveling runs on the game-simulation
// goroutine like all other overlay mutations.
type Bank struct {
	credits int64
}

// NewBank creates a bank with a starting balance.
func NewBank(credits int64) *Bank {
	if credits < 0 {
		credits = 0
	}
	return &Bank{credits: credits}
}

// Credits returns the current balance.
func (b *Bank) Credits() int64 { return b.credits }

// Deposit adds credits to the balance.
func (b *Bank) Deposit(amount int64) {
	if amount > 0 {
		b.credits += amount
	}
}

// Upgrade raises the skill one level, debiting the upgrade cost.
// Fails without side effects if the skill is at its ceiling or the bank
// cannot cover the cost.
func Upgrade(b *Bank, s *skill.Skill) error {
	desc := s.Descriptor()
	if max, ok := desc.MaxLevel(); ok && s.Level() >= max {
		return fmt.Errorf("upgrade %s: %w (level %d)", desc.ClassID(), ErrMaxLevel, s.Level())
	}

	cost := int64(s.UpgradeCost())
	if b.credits < cost {
		return fmt.Errorf("upgrade %s: %w (have %d, need %d)", desc.ClassID(), ErrInsufficientCredits, b.credits, cost)
	}

	if err := s.SetLevel(s.Level() + 1); err != nil {
		return fmt.Errorf("upgrade %s: %w", desc.ClassID(), err)
	}
	b.credits -= cost

	slog.Debug("skill upgraded",
		"skill", desc.ClassID(),
		"level", s.Level(),
		"cost", cost,
		"credits", b.credits)
	return nil
}

// Downgrade lowers the skill one level, crediting the refund.
// Fails without side effects if the skill is already at level zero.
func Downgrade(b *Bank, s *skill.Skill) error {
	desc := s.Descriptor()
	if s.Level() == 0 {
		return fmt.Errorf("downgrade %s: %w", desc.ClassID(), ErrMinLevel)
	}

	refund := int64(s.DowngradeRefund())
	if err := s.SetLevel(s.Level() - 1); err != nil {
		return fmt.Errorf("downgrade %s: %w", desc.ClassID(), err)
	}
	b.credits += refund

	slog.Debug("skill downgraded",
		"skill", desc.ClassID(),
		"level", s.Level(),
		"refund", refund,
		"credits", b.credits)
	return nil
}
