package character

import (
	"github.com/totegamma/charsheet/core"
)

type abilityScores struct {
	Strength     int `json:"strength" validate:"min=3,max=18"`
	Dexterity    int `json:"dexterity" validate:"min=3,max=18"`
	Constitution int `json:"constitution" validate:"min=3,max=18"`
	Intelligence int `json:"intelligence" validate:"min=3,max=18"`
	Wisdom       int `json:"wisdom" validate:"min=3,max=18"`
	Charisma     int `json:"charisma" validate:"min=3,max=18"`
}

func (a abilityScores) toModel() core.AbilityScore {
	return core.AbilityScore{
		Strength:     a.Strength,
		Dexterity:    a.Dexterity,
		Constitution: a.Constitution,
		Intelligence: a.Intelligence,
		Wisdom:       a.Wisdom,
		Charisma:     a.Charisma,
	}
}

type createRequest struct {
	Name             string         `json:"name" validate:"required,max=100"`
	ClassID          string         `json:"classId" validate:"required,uuid"`
	SubclassID       *string        `json:"subclassId" validate:"omitempty,uuid"`
	SpeciesID        string         `json:"speciesId" validate:"required,uuid"`
	BackgroundID     string         `json:"backgroundId" validate:"required,uuid"`
	Alignment        string         `json:"alignment" validate:"required,alignment"`
	Level            int            `json:"level" validate:"omitempty,min=1,max=20"`
	ExperiencePoints int            `json:"experiencePoints" validate:"min=0"`
	AbilityScores    *abilityScores `json:"abilityScores" validate:"required"`
}

func (r createRequest) toInput() core.CharacterCreate {
	return core.CharacterCreate{
		Name:             r.Name,
		ClassID:          r.ClassID,
		SubclassID:       r.SubclassID,
		SpeciesID:        r.SpeciesID,
		BackgroundID:     r.BackgroundID,
		Alignment:        core.Alignment(r.Alignment),
		Level:            r.Level,
		ExperiencePoints: r.ExperiencePoints,
		AbilityScores:    r.AbilityScores.toModel(),
	}
}

// updateRequest is a PATCH body. Absent fields are left unchanged.
type updateRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=100"`
	Alignment          *string `json:"alignment" validate:"omitempty,alignment"`
	Level              *int    `json:"level" validate:"omitempty,min=1,max=20"`
	ExperiencePoints   *int    `json:"experiencePoints" validate:"omitempty,min=0"`
	ClassID            *string `json:"classId" validate:"omitempty,uuid"`
	SubclassID         *string `json:"subclassId" validate:"omitempty,uuid|len=0"`
	SpeciesID          *string `json:"speciesId" validate:"omitempty,uuid"`
	BackgroundID       *string `json:"backgroundId" validate:"omitempty,uuid"`
	CurrentHitPoints   *int    `json:"currentHitPoints" validate:"omitempty,min=0"`
	TemporaryHitPoints *int    `json:"temporaryHitPoints" validate:"omitempty,min=0"`
	Inspiration        *bool   `json:"inspiration"`
}

func (r updateRequest) toPatch() core.CharacterPatch {
	patch := core.CharacterPatch{
		Name:               r.Name,
		Level:              r.Level,
		ExperiencePoints:   r.ExperiencePoints,
		ClassID:            r.ClassID,
		SubclassID:         r.SubclassID,
		SpeciesID:          r.SpeciesID,
		BackgroundID:       r.BackgroundID,
		CurrentHitPoints:   r.CurrentHitPoints,
		TemporaryHitPoints: r.TemporaryHitPoints,
		Inspiration:        r.Inspiration,
	}
	if r.Alignment != nil {
		alignment := core.Alignment(*r.Alignment)
		patch.Alignment = &alignment
	}
	return patch
}

// abilityScoresRequest replaces all six scores of an existing character
type abilityScoresRequest struct {
	Strength     int `json:"strength" validate:"min=1,max=30"`
	Dexterity    int `json:"dexterity" validate:"min=1,max=30"`
	Constitution int `json:"constitution" validate:"min=1,max=30"`
	Intelligence int `json:"intelligence" validate:"min=1,max=30"`
	Wisdom       int `json:"wisdom" validate:"min=1,max=30"`
	Charisma     int `json:"charisma" validate:"min=1,max=30"`
}

func (r abilityScoresRequest) toModel() core.AbilityScore {
	return core.AbilityScore{
		Strength:     r.Strength,
		Dexterity:    r.Dexterity,
		Constitution: r.Constitution,
		Intelligence: r.Intelligence,
		Wisdom:       r.Wisdom,
		Charisma:     r.Charisma,
	}
}

type addItemRequest struct {
	ItemID   string `json:"itemId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	Equipped bool   `json:"equipped"`
}

type updateItemRequest struct {
	Quantity *int  `json:"quantity" validate:"omitempty,min=1"`
	Equipped *bool `json:"equipped"`
}

type learnSpellRequest struct {
	SpellID  string `json:"spellId" validate:"required,uuid"`
	Prepared bool   `json:"prepared"`
}

type updateSpellRequest struct {
	Prepared bool `json:"prepared"`
}
