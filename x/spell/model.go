// Package spell manages the spell catalog
package spell

import (
	"github.com/totegamma/charsheet/core"
)

type spellRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Level         int      `json:"level" validate:"min=0,max=9"`
	School        string   `json:"school" validate:"required,spellschool"`
	CastingTime   string   `json:"castingTime" validate:"max=100"`
	Range         string   `json:"range" validate:"max=100"`
	Components    []string `json:"components" validate:"max=3,dive,oneof=V S M"`
	Duration      string   `json:"duration" validate:"max=100"`
	Concentration bool     `json:"concentration"`
	Ritual        bool     `json:"ritual"`
	Classes       []string `json:"classes" validate:"dive,required"`
	Description   string   `json:"description" validate:"max=20000"`
}

func (r spellRequest) toModel() core.Spell {
	return core.Spell{
		Name:          r.Name,
		Level:         r.Level,
		School:        core.SpellSchool(r.School),
		CastingTime:   r.CastingTime,
		Range:         r.Range,
		Components:    r.Components,
		Duration:      r.Duration,
		Concentration: r.Concentration,
		Ritual:        r.Ritual,
		Classes:       r.Classes,
		Description:   r.Description,
	}
}
