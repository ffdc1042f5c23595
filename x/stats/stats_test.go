package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/charsheet/core"
)

func TestAbilityModifier(t *testing.T) {
	for score := 1; score <= 30; score++ {
		expected := int(math.Floor(float64(score-10) / 2))
		assert.Equal(t, expected, AbilityModifier(score), "score %d", score)
	}

	assert.Equal(t, 0, AbilityModifier(10))
	assert.Equal(t, 0, AbilityModifier(11))
	assert.Equal(t, -1, AbilityModifier(8))
	assert.Equal(t, -2, AbilityModifier(7))
	assert.Equal(t, 4, AbilityModifier(18))
	assert.Equal(t, -4, AbilityModifier(3))
}

func TestProficiencyBonus(t *testing.T) {
	levels := []int{1, 4, 5, 8, 9, 12, 13, 16, 17, 20}
	expected := []int{2, 2, 3, 3, 4, 4, 5, 5, 6, 6}

	for i, level := range levels {
		assert.Equal(t, expected[i], ProficiencyBonus(level), "level %d", level)
	}
}

func TestOutOfRangeInputsAreNotClamped(t *testing.T) {
	assert.Equal(t, 7, ProficiencyBonus(21))
	assert.Equal(t, 7, ProficiencyBonus(24))
	assert.Equal(t, 8, ProficiencyBonus(25))
	assert.Equal(t, 1, ProficiencyBonus(-3))

	in := InputFor(core.Character{Level: 1, Species: &core.Species{Speed: -5}})
	assert.Equal(t, -5, in.SpeciesBaseSpeed)
}

func TestHitDieMax(t *testing.T) {
	assert.Equal(t, 6, HitDieMax(core.D6))
	assert.Equal(t, 8, HitDieMax(core.D8))
	assert.Equal(t, 10, HitDieMax(core.D10))
	assert.Equal(t, 12, HitDieMax(core.D12))
	assert.Equal(t, 8, HitDieMax("d20"))
	assert.Equal(t, 8, HitDieMax(""))
}

func TestCalculateHitPoints(t *testing.T) {
	derived := Calculate(Input{
		HitDieMax:            HitDieMax(core.D8),
		ConstitutionModifier: 2,
		SpeciesBaseSpeed:     30,
		Level:                1,
	})

	assert.Equal(t, 10, derived.MaxHitPoints)
	assert.Equal(t, 10, derived.CurrentHitPoints)
}

func TestInputForMissingRelations(t *testing.T) {
	character := core.Character{
		Level: 3,
		AbilityScore: &core.AbilityScore{
			Constitution: 10,
			Dexterity:    10,
		},
	}

	in := InputFor(character)
	assert.Equal(t, 8, in.HitDieMax)
	assert.Equal(t, 30, in.SpeciesBaseSpeed)

	derived := Recalculate(character)
	assert.Equal(t, 8, derived.MaxHitPoints)
	assert.Equal(t, 30, derived.Speed)
	assert.Equal(t, 10, derived.ArmorClass)
}

func TestInputForSpeciesWithoutSpeed(t *testing.T) {
	character := core.Character{
		Level:   1,
		Species: &core.Species{Name: "Unknown"},
	}

	assert.Equal(t, 30, Recalculate(character).Speed)
}

func TestRecalculateAfterDexterityChange(t *testing.T) {
	character := core.Character{
		Level:   2,
		Class:   &core.CharacterClass{HitDie: core.D10},
		Species: &core.Species{Speed: 25},
		AbilityScore: &core.AbilityScore{
			Constitution: 14,
			Dexterity:    12,
		},
	}

	Recalculate(character).ApplyTo(&character)
	assert.Equal(t, 11, character.ArmorClass)
	assert.Equal(t, 1, character.InitiativeBonus)
	assert.Equal(t, 12, character.MaxHitPoints)
	assert.Equal(t, 25, character.Speed)

	// take some damage
	character.CurrentHitPoints = 3

	character.AbilityScore.Dexterity = 16
	Recalculate(character).ApplyTo(&character)
	assert.Equal(t, 13, character.ArmorClass)
	assert.Equal(t, 3, character.InitiativeBonus)
	assert.Equal(t, 12, character.CurrentHitPoints)
}

func TestEndToEndScenario(t *testing.T) {
	character := core.Character{
		Level:   1,
		Class:   &core.CharacterClass{HitDie: core.D10},
		Species: &core.Species{Speed: 30},
		AbilityScore: &core.AbilityScore{
			Strength:     15,
			Dexterity:    14,
			Constitution: 13,
			Intelligence: 10,
			Wisdom:       12,
			Charisma:     8,
		},
	}

	// d10 with constitution 13 (+1)
	derived := Recalculate(character)
	assert.Equal(t, DerivedStats{
		MaxHitPoints:     11,
		CurrentHitPoints: 11,
		Speed:            30,
		ProficiencyBonus: 2,
		InitiativeBonus:  2,
		ArmorClass:       12,
	}, derived)

	derived.ApplyTo(&character)
	assert.Equal(t, derived, Of(character))
}

func TestNegativeModifiers(t *testing.T) {
	derived := Calculate(Input{
		HitDieMax:            HitDieMax(core.D6),
		ConstitutionModifier: AbilityModifier(3),
		DexterityModifier:    AbilityModifier(7),
		SpeciesBaseSpeed:     30,
		Level:                20,
	})

	assert.Equal(t, 2, derived.MaxHitPoints)
	assert.Equal(t, 8, derived.ArmorClass)
	assert.Equal(t, -2, derived.InitiativeBonus)
	assert.Equal(t, 6, derived.ProficiencyBonus)
}
