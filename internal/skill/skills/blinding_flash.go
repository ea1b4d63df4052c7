package skills

import (
	"time"

	"github.com/udisondev/gorpg/internal/skill"
)

const blindSecondsPerLevel = 1

// NewBlindingFlash builds the Blinding Flash skill class.
// Blinds the attacker for one second per level whenever the skill's
// owner takes damage.
func NewBlindingFlash() (*skill.ClassDescriptor, error) {
	b := skill.NewClass("Blinding_Flash", "Blind anyone who dares to attack you.")
	b.SetMaxLevel(5)

	b.On("blindAttacker", func(s *skill.Skill, ev *skill.Event) error {
		attacker, ok := ev.PlayerParam("attacker")
		if !ok || attacker == nil || s.Level() == 0 {
			return nil
		}
		attacker.BlindFor(time.Duration(s.Level()) * blindSecondsPerLevel * time.Second)
		return nil
	}, "player_victim")

	return b.Build()
}
