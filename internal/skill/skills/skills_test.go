package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gorpg/internal/model"
	"github.com/udisondev/gorpg/internal/skill"
	"github.com/udisondev/gorpg/internal/tick"
)

func newTestOwner(t *testing.T, objectID uint32) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(objectID, "Tester")
	require.NoError(t, err)
	return p
}

func TestRegisterAllSkills(t *testing.T) {
	c := skill.NewCatalog()
	require.NoError(t, RegisterAllSkills(c))
	assert.Equal(t, 5, c.Len())

	// Every library skill is queryable without instantiation
	for _, id := range []string{"Bonus_Health", "Vampirism", "Long_Jump", "Blinding_Flash", "Regeneration"} {
		d, ok := c.Get(id)
		require.True(t, ok, "skill %s not registered", id)
		assert.NotEmpty(t, d.Description(), "skill %s has no description", id)
	}

	// Double registration must fail on the duplicate IDs
	assert.Error(t, RegisterAllSkills(c))
}

func TestBonusHealth(t *testing.T) {
	desc, err := NewBonusHealth()
	require.NoError(t, err)

	assert.Equal(t, "Bonus_Health", desc.ClassID())
	assert.Equal(t, "Bonus Health", desc.DisplayName())
	max, ok := desc.MaxLevel()
	require.True(t, ok)
	assert.Equal(t, int32(16), max)

	player := newTestOwner(t, 1)
	before := player.Health()

	s, err := skill.NewSkill(desc, 2)
	require.NoError(t, err)
	require.NoError(t, s.HandleEvent(skill.NewEvent("player_spawn", player)))

	assert.Equal(t, before+50, player.Health(), "level 2 spawn should grant +50")
}

func TestVampirism(t *testing.T) {
	desc, err := NewVampirism()
	require.NoError(t, err)

	player := newTestOwner(t, 1)
	player.SetHealth(40)

	s, err := skill.NewSkill(desc, 2)
	require.NoError(t, err)

	ev := skill.NewEvent("player_attack", player).WithParam("damage", int32(20))
	require.NoError(t, s.HandleEvent(ev))

	// level 2 × 2 leech × 20 damage / 10 = 8
	assert.Equal(t, int32(48), player.Health())

	// No damage parameter: nothing leeched
	require.NoError(t, s.HandleEvent(skill.NewEvent("player_attack", player)))
	assert.Equal(t, int32(48), player.Health())
}

func TestLongJump(t *testing.T) {
	desc, err := NewLongJump()
	require.NoError(t, err)

	player := newTestOwner(t, 1)
	s, err := skill.NewSkill(desc, 4)
	require.NoError(t, err)

	require.NoError(t, s.HandleEvent(skill.NewEvent("player_jump", player)))
	assert.InDelta(t, 2.0, player.JumpBoost(), 0.0001, "level 4 should double jump velocity")

	// Boost is reapplied on spawn too
	player.SetJumpBoost(1.0)
	require.NoError(t, s.HandleEvent(skill.NewEvent("player_spawn", player)))
	assert.InDelta(t, 2.0, player.JumpBoost(), 0.0001)
}

func TestBlindingFlash(t *testing.T) {
	desc, err := NewBlindingFlash()
	require.NoError(t, err)

	victim := newTestOwner(t, 1)
	attacker := newTestOwner(t, 2)

	s, err := skill.NewSkill(desc, 3)
	require.NoError(t, err)

	ev := skill.NewEvent("player_victim", victim).WithParam("attacker", attacker)
	require.NoError(t, s.HandleEvent(ev))

	assert.True(t, attacker.IsBlinded())
	assert.False(t, victim.IsBlinded())
}

func TestBlindingFlash_LevelZeroDoesNothing(t *testing.T) {
	desc, err := NewBlindingFlash()
	require.NoError(t, err)

	victim := newTestOwner(t, 1)
	attacker := newTestOwner(t, 2)

	s, err := skill.NewSkill(desc, 0)
	require.NoError(t, err)

	ev := skill.NewEvent("player_victim", victim).WithParam("attacker", attacker)
	require.NoError(t, s.HandleEvent(ev))
	assert.False(t, attacker.IsBlinded())
}

func TestRegenerationSkill(t *testing.T) {
	sched := tick.NewScheduler()
	defer sched.Shutdown()

	desc, err := NewRegeneration()
	require.NoError(t, err)
	assert.Empty(t, desc.Events(), "regeneration reacts to no game events")

	owner := newTestOwner(t, 1)
	owner.AddHealth(-10)

	ts, err := NewRegenerationSkill(desc, 4, sched, DefaultRegenerationInterval, owner)
	require.NoError(t, err)
	defer ts.Close()

	require.NoError(t, ts.Tick())
	assert.Equal(t, int32(94), owner.Health(), "one tick heals Level() points")

	// Healing never exceeds base max health
	owner.SetHealth(owner.MaxHealth() - 2)
	require.NoError(t, ts.Tick())
	assert.Equal(t, owner.MaxHealth(), owner.Health())

	require.NoError(t, ts.Tick())
	assert.Equal(t, owner.MaxHealth(), owner.Health())
}

func TestRegenerationSkill_DeadOwnerNotHealed(t *testing.T) {
	sched := tick.NewScheduler()
	defer sched.Shutdown()

	desc, err := NewRegeneration()
	require.NoError(t, err)

	owner := newTestOwner(t, 1)
	owner.SetHealth(0)

	ts, err := NewRegenerationSkill(desc, 5, sched, DefaultRegenerationInterval, owner)
	require.NoError(t, err)
	defer ts.Close()

	require.NoError(t, ts.Tick())
	assert.Equal(t, int32(0), owner.Health())
}
