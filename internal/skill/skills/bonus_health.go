// Package skills implements the built-in skill library using the skill
// framework. Each skill is a constructor building its class descriptor,
// registered together via RegisterAllSkills.
package skills

import (
	"github.com/udisondev/gorpg/internal/skill"
)

const bonusHealthPerLevel = 25

// NewBonusHealth builds the Bonus Health skill class.
// Grants +25 health per level when the player spawns.
func NewBonusHealth() (*skill.ClassDescriptor, error) {
	b := skill.NewClass("Bonus_Health", "Grant +25 bonus health for each level upon spawning.")
	b.SetMaxLevel(16)

	b.On("giveHealth", func(s *skill.Skill, ev *skill.Event) error {
		if ev.Player == nil {
			return nil
		}
		ev.Player.AddHealth(s.Level() * bonusHealthPerLevel)
		return nil
	}, "player_spawn")

	return b.Build()
}
