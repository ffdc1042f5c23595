// Package stats derives the combat statistics of a character from its class, species, ability scores and level
package stats

import (
	"github.com/totegamma/charsheet/core"
)

const (
	defaultHitDieMax = 8
	defaultSpeed     = 30
	baseArmorClass   = 10
)

// Input is everything the derivation depends on
type Input struct {
	HitDieMax            int
	ConstitutionModifier int
	DexterityModifier    int
	SpeciesBaseSpeed     int
	Level                int
}

// DerivedStats are the computed fields of a character
type DerivedStats struct {
	MaxHitPoints     int `json:"maxHitPoints"`
	CurrentHitPoints int `json:"currentHitPoints"`
	Speed            int `json:"speed"`
	ProficiencyBonus int `json:"proficiencyBonus"`
	InitiativeBonus  int `json:"initiativeBonus"`
	ArmorClass       int `json:"armorClass"`
}

// AbilityModifier returns floor((score - 10) / 2), rounding toward negative infinity
func AbilityModifier(score int) int {
	diff := score - 10
	if diff >= 0 {
		return diff / 2
	}
	return (diff - 1) / 2
}

// ProficiencyBonus returns 2 at levels 1-4, 3 at 5-8, ... 6 at 17-20.
// Levels outside 1-20 are not clamped.
func ProficiencyBonus(level int) int {
	return (level-1)/4 + 2
}

// HitDieMax returns the maximum face of the die. Anything unrecognized counts as a d8.
func HitDieMax(die core.HitDie) int {
	switch die {
	case core.D6:
		return 6
	case core.D8:
		return 8
	case core.D10:
		return 10
	case core.D12:
		return 12
	default:
		return defaultHitDieMax
	}
}

// Calculate derives the stats from the given input. It never fails.
// CurrentHitPoints always equals MaxHitPoints: recalculation resets any damage taken.
func Calculate(in Input) DerivedStats {
	maxHP := in.HitDieMax + in.ConstitutionModifier
	return DerivedStats{
		MaxHitPoints:     maxHP,
		CurrentHitPoints: maxHP,
		Speed:            in.SpeciesBaseSpeed,
		ProficiencyBonus: ProficiencyBonus(in.Level),
		InitiativeBonus:  in.DexterityModifier,
		ArmorClass:       baseArmorClass + in.DexterityModifier,
	}
}

// InputFor collects the input from a character loaded with its relations.
// A missing class or species falls back to a d8 and a speed of 30, as does a species without a speed.
func InputFor(character core.Character) Input {
	in := Input{
		HitDieMax:        hitDieMaxOf(character.Class),
		SpeciesBaseSpeed: speedOf(character.Species),
		Level:            character.Level,
	}
	if character.AbilityScore != nil {
		in.ConstitutionModifier = AbilityModifier(character.AbilityScore.Constitution)
		in.DexterityModifier = AbilityModifier(character.AbilityScore.Dexterity)
	}
	return in
}

// Recalculate is Calculate(InputFor(character))
func Recalculate(character core.Character) DerivedStats {
	return Calculate(InputFor(character))
}

// ApplyTo copies the derived stats onto the character
func (d DerivedStats) ApplyTo(character *core.Character) {
	character.MaxHitPoints = d.MaxHitPoints
	character.CurrentHitPoints = d.CurrentHitPoints
	character.Speed = d.Speed
	character.ProficiencyBonus = d.ProficiencyBonus
	character.InitiativeBonus = d.InitiativeBonus
	character.ArmorClass = d.ArmorClass
}

// Of reads the derived stats currently stored on a character
func Of(character core.Character) DerivedStats {
	return DerivedStats{
		MaxHitPoints:     character.MaxHitPoints,
		CurrentHitPoints: character.CurrentHitPoints,
		Speed:            character.Speed,
		ProficiencyBonus: character.ProficiencyBonus,
		InitiativeBonus:  character.InitiativeBonus,
		ArmorClass:       character.ArmorClass,
	}
}

func hitDieMaxOf(class *core.CharacterClass) int {
	if class == nil {
		return defaultHitDieMax
	}
	return HitDieMax(class.HitDie)
}

func speedOf(species *core.Species) int {
	if species == nil || species.Speed == 0 {
		return defaultSpeed
	}
	return species.Speed
}
