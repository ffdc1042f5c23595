package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/charsheet/core"
)

type scores struct {
	Dexterity int `json:"dexterity" validate:"min=3,max=18"`
}

type sample struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Alignment string  `json:"alignment" validate:"required,alignment"`
	HitDie    string  `json:"hitDie" validate:"omitempty,hitdie"`
	Category  string  `json:"category" validate:"omitempty,itemcategory"`
	School    string  `json:"school" validate:"omitempty,spellschool"`
	Scores    *scores `json:"abilityScores" validate:"required"`
}

func TestValidateOK(t *testing.T) {
	v := New()

	err := v.Validate(sample{
		Name:      "Aria",
		Alignment: string(core.ChaoticGood),
		HitDie:    string(core.D10),
		Category:  string(core.ItemWeapon),
		School:    string(core.Evocation),
		Scores:    &scores{Dexterity: 14},
	})
	assert.NoError(t, err)
}

func TestValidateDetails(t *testing.T) {
	v := New()

	err := v.Validate(sample{
		Name:      "",
		Alignment: "chaotic_stupid",
		HitDie:    "d20",
		Scores:    &scores{Dexterity: 19},
	})
	if !assert.Error(t, err) {
		return
	}

	details, ok := Details(err)
	if assert.True(t, ok) {
		assert.ElementsMatch(t, []core.ErrorDetail{
			{Field: "name", Rule: "required"},
			{Field: "alignment", Rule: "alignment"},
			{Field: "hitDie", Rule: "hitdie"},
			{Field: "abilityScores.dexterity", Rule: "max", Param: "18"},
		}, details)
	}
}

func TestDetailsOfOtherError(t *testing.T) {
	_, ok := Details(errors.New("boom"))
	assert.False(t, ok)
}
