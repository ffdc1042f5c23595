package class

import (
	"github.com/totegamma/charsheet/core"
)

type classRequest struct {
	Name                string   `json:"name" validate:"required,max=100"`
	HitDie              string   `json:"hitDie" validate:"required,hitdie"`
	PrimaryAbility      string   `json:"primaryAbility" validate:"omitempty,oneof=strength dexterity constitution intelligence wisdom charisma"`
	SavingThrows        []string `json:"savingThrows" validate:"max=6,dive,oneof=strength dexterity constitution intelligence wisdom charisma"`
	SpellcastingAbility string   `json:"spellcastingAbility" validate:"omitempty,oneof=strength dexterity constitution intelligence wisdom charisma"`
	Description         string   `json:"description" validate:"max=10000"`
}

func (r classRequest) toModel() core.CharacterClass {
	return core.CharacterClass{
		Name:                r.Name,
		HitDie:              core.HitDie(r.HitDie),
		PrimaryAbility:      r.PrimaryAbility,
		SavingThrows:        r.SavingThrows,
		SpellcastingAbility: r.SpellcastingAbility,
		Description:         r.Description,
	}
}

type subclassRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=10000"`
}

func (r subclassRequest) toModel() core.Subclass {
	return core.Subclass{
		Name:        r.Name,
		Description: r.Description,
	}
}
