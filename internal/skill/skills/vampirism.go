package skills

import (
	"github.com/udisondev/gorpg/internal/skill"
)

// Vampirism leeches a fraction of dealt damage as health, two points per
// level out of every ten damage dealt.
const vampirismLeechPerLevel = 2

// NewVampirism builds the Vampirism skill class.
func NewVampirism() (*skill.ClassDescriptor, error) {
	b := skill.NewClass("Vampirism", "Leech health from your victims with every hit.")
	b.SetMaxLevel(8)

	b.On("leechHealth", func(s *skill.Skill, ev *skill.Event) error {
		if ev.Player == nil || !ev.Player.IsAlive() {
			return nil
		}
		damage, ok := ev.IntParam("damage")
		if !ok || damage <= 0 {
			return nil
		}
		leech := s.Level() * vampirismLeechPerLevel * damage / 10
		if leech > 0 {
			ev.Player.AddHealth(leech)
		}
		return nil
	}, "player_attack")

	return b.Build()
}
