package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/levelup/internal/progression"
)

func TestNew(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.TotalXP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.CompletedSkills)
	assert.Equal(t, 0, p.SkillsInProgress)
	assert.Equal(t, 1, p.CurrentStreak)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{100, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
		{-5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.xp), "LevelFor(%d)", tt.xp)
	}
}

func TestApplyXPEvent(t *testing.T) {
	p := ApplyXPEvent(New(), progression.XPEvent{NodeID: "1", Amount: 100})
	assert.Equal(t, 100, p.TotalXP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.CompletedSkills)

	p = ApplyXPEvent(p, progression.XPEvent{NodeID: "3", Amount: 150})
	assert.Equal(t, 250, p.TotalXP)
	assert.Equal(t, 2, p.CompletedSkills)
}

func TestApplyXPEvent_LevelBoundary(t *testing.T) {
	p := New()
	p = ApplyXPEvent(p, progression.XPEvent{NodeID: "a", Amount: 500})
	p = ApplyXPEvent(p, progression.XPEvent{NodeID: "b", Amount: 499})
	assert.Equal(t, 1, p.Level)

	p = ApplyXPEvent(p, progression.XPEvent{NodeID: "c", Amount: 1})
	assert.Equal(t, 1000, p.TotalXP)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.LevelProgress())
}

func TestApplyXPEvent_IsPure(t *testing.T) {
	p := New()
	_ = ApplyXPEvent(p, progression.XPEvent{NodeID: "a", Amount: 300})
	assert.Equal(t, New(), p)
}

func TestApplyXPEvent_Monotonic(t *testing.T) {
	p := New()
	for _, amount := range []int{100, 0, 250, -40, 1000} {
		prev := p
		p = ApplyXPEvent(p, progression.XPEvent{NodeID: "n", Amount: amount})
		assert.GreaterOrEqual(t, p.TotalXP, prev.TotalXP)
		assert.Greater(t, p.CompletedSkills, prev.CompletedSkills)
	}
}

func TestLevelFraction(t *testing.T) {
	p := Profile{TotalXP: 1250, Level: 2}
	assert.Equal(t, 250, p.LevelProgress())
	assert.InDelta(t, 0.25, p.LevelFraction(), 1e-9)
}
