package skills

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/gorpg/internal/skill"
)

// RegisterAllSkills builds every skill in the library and registers the
// class descriptors into the catalog.
func RegisterAllSkills(c *skill.Catalog) error {
	constructors := []func() (*skill.ClassDescriptor, error){
		NewBonusHealth,   // +25 health per level on spawn
		NewVampirism,     // leech health on attack
		NewLongJump,      // jump velocity boost
		NewBlindingFlash, // blind attackers
		NewRegeneration,  // timed heal
	}

	for _, ctor := range constructors {
		desc, err := ctor()
		if err != nil {
			return fmt.Errorf("build skill class: %w", err)
		}
		if err := c.Register(desc); err != nil {
			return fmt.Errorf("register skill %q: %w", desc.ClassID(), err)
		}
	}

	slog.Info("skills registered", "count", len(constructors))
	return nil
}
