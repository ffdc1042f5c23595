package species

import (
	"github.com/totegamma/charsheet/core"
)

type speciesRequest struct {
	Name           string         `json:"name" validate:"required,max=100"`
	Speed          int            `json:"speed" validate:"omitempty,min=5,max=120"`
	Size           string         `json:"size" validate:"omitempty,oneof=tiny small medium large huge gargantuan"`
	AbilityBonuses map[string]int `json:"abilityBonuses" validate:"dive,keys,oneof=strength dexterity constitution intelligence wisdom charisma,endkeys,min=-5,max=5"`
	Languages      []string       `json:"languages" validate:"dive,required"`
	Traits         []string       `json:"traits" validate:"dive,required"`
}

func (r speciesRequest) toModel() core.Species {
	return core.Species{
		Name:           r.Name,
		Speed:          r.Speed,
		Size:           r.Size,
		AbilityBonuses: r.AbilityBonuses,
		Languages:      r.Languages,
		Traits:         r.Traits,
	}
}
