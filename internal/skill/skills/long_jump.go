package skills

import (
	"github.com/udisondev/gorpg/internal/skill"
)

const jumpBoostPerLevel = 0.25

// NewLongJump builds the Long Jump skill class.
// Raises jump velocity by 25% per level. Applied on spawn and kept in
// sync on every jump in case the host reset the multiplier.
func NewLongJump() (*skill.ClassDescriptor, error) {
	b := skill.NewClass("Long_Jump", "Jump further with each level.")
	b.SetMaxLevel(6)

	applyBoost := func(s *skill.Skill, ev *skill.Event) error {
		if ev.Player == nil {
			return nil
		}
		ev.Player.SetJumpBoost(1.0 + jumpBoostPerLevel*float64(s.Level()))
		return nil
	}
	b.On("applyBoost", applyBoost, "player_spawn", "player_jump")

	return b.Build()
}
