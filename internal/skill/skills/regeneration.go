package skills

import (
	"time"

	"github.com/udisondev/gorpg/internal/model"
	"github.com/udisondev/gorpg/internal/skill"
	"github.com/udisondev/gorpg/internal/tick"
)

// DefaultRegenerationInterval is how often a Regeneration skill heals its
// owner unless the host configures another interval.
const DefaultRegenerationInterval = 2 * time.Second

// NewRegeneration builds the Regeneration skill class. It reacts to no
// game events; the healing runs on its own timer (see NewRegenerationSkill).
func NewRegeneration() (*skill.ClassDescriptor, error) {
	b := skill.NewClass("Regeneration", "Regenerate health over time, one point per level.")
	b.SetMaxLevel(10)
	return b.Build()
}

// NewRegenerationSkill creates a live Regeneration instance for a player.
// The periodic heal restores Level() health every interval, never beyond
// the player's base max health. The caller owns the instance and must
// Close it when the player drops the skill or disconnects.
func NewRegenerationSkill(desc *skill.ClassDescriptor, level int32, sched *tick.Scheduler, interval time.Duration, owner *model.Player) (*skill.TickSkill, error) {
	return skill.NewTickSkill(desc, level, sched, interval, func(ts *skill.TickSkill) error {
		if owner == nil || !owner.IsAlive() || ts.Level() == 0 {
			return nil
		}
		missing := owner.MaxHealth() - owner.Health()
		if missing <= 0 {
			return nil
		}
		heal := ts.Level()
		if heal > missing {
			heal = missing
		}
		owner.AddHealth(heal)
		return nil
	})
}
