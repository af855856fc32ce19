package profile

import "github.com/abhisek/levelup/internal/progression"

// XPPerLevel is the amount of experience needed to advance one level.
const XPPerLevel = 1000

// Profile aggregates the experience earned in the current graph.
type Profile struct {
	TotalXP          int
	Level            int
	CompletedSkills  int
	SkillsInProgress int
	CurrentStreak    int
}

// New returns the profile every freshly loaded graph starts with.
func New() Profile {
	return Profile{
		Level:         1,
		CurrentStreak: 1,
	}
}

// LevelFor derives the level reached with totalXP experience.
func LevelFor(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1
}

// ApplyXPEvent returns p updated with a completion event. It must only be
// called with events emitted by the progression engine, which never emits
// one for a repeated completion.
func ApplyXPEvent(p Profile, e progression.XPEvent) Profile {
	amount := e.Amount
	if amount < 0 {
		amount = 0
	}
	p.TotalXP += amount
	p.Level = LevelFor(p.TotalXP)
	p.CompletedSkills++
	return p
}

// LevelProgress returns the experience earned towards the next level.
func (p Profile) LevelProgress() int {
	return p.TotalXP % XPPerLevel
}

// LevelFraction returns LevelProgress as a fraction in [0, 1).
func (p Profile) LevelFraction() float64 {
	return float64(p.LevelProgress()) / float64(XPPerLevel)
}
