package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer(1, "Alice")
	require.NoError(t, err)

	assert.Equal(t, uint32(1), p.ObjectID())
	assert.Equal(t, "Alice", p.Name())
	assert.Equal(t, int32(100), p.Health())
	assert.Equal(t, int32(100), p.MaxHealth())
	assert.True(t, p.IsAlive())
	assert.InDelta(t, 1.0, p.JumpBoost(), 0.0001)
}

func TestNewPlayer_Validation(t *testing.T) {
	_, err := NewPlayer(0, "Alice")
	assert.Error(t, err, "zero object ID")

	_, err = NewPlayer(1, "")
	assert.Error(t, err, "empty name")
}

func TestPlayer_Health(t *testing.T) {
	p, err := NewPlayer(1, "Alice")
	require.NoError(t, err)

	// Bonus health may exceed the base ceiling
	p.AddHealth(50)
	assert.Equal(t, int32(150), p.Health())

	p.AddHealth(-200)
	assert.Equal(t, int32(0), p.Health())
	assert.False(t, p.IsAlive())

	p.SetHealth(-10)
	assert.Equal(t, int32(0), p.Health())
}

func TestPlayer_Armor(t *testing.T) {
	p, err := NewPlayer(1, "Alice")
	require.NoError(t, err)

	p.AddArmor(30)
	assert.Equal(t, int32(30), p.Armor())

	p.AddArmor(-50)
	assert.Equal(t, int32(0), p.Armor())
}

func TestPlayer_JumpBoostClamped(t *testing.T) {
	p, err := NewPlayer(1, "Alice")
	require.NoError(t, err)

	p.SetJumpBoost(0.5)
	assert.InDelta(t, 1.0, p.JumpBoost(), 0.0001, "skills never slow jumps")

	p.SetJumpBoost(1.75)
	assert.InDelta(t, 1.75, p.JumpBoost(), 0.0001)
}

func TestPlayer_Blind(t *testing.T) {
	p, err := NewPlayer(1, "Alice")
	require.NoError(t, err)
	assert.False(t, p.IsBlinded())

	p.BlindFor(time.Minute)
	assert.True(t, p.IsBlinded())

	// A shorter blind never cuts a longer one short
	p.BlindFor(time.Millisecond)
	assert.True(t, p.IsBlinded())
}
