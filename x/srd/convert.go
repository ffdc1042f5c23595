package srd

import (
	"strings"

	"github.com/totegamma/charsheet/client"
	"github.com/totegamma/charsheet/core"
)

func abilityNames(refs []client.Reference) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, client.AbilityName(ref.Index))
	}
	return names
}

func toClass(remote client.Class) core.CharacterClass {
	class := core.CharacterClass{
		Name:         remote.Name,
		HitDie:       core.HitDieFromSize(remote.HitDie),
		SavingThrows: abilityNames(remote.SavingThrows),
	}
	if len(class.SavingThrows) > 0 {
		class.PrimaryAbility = class.SavingThrows[0]
	}
	if remote.Spellcasting != nil {
		class.SpellcastingAbility = client.AbilityName(remote.Spellcasting.Ability.Index)
	}
	return class
}

func toSpecies(remote client.Race) core.Species {
	bonuses := core.AbilityBonuses{}
	for _, bonus := range remote.AbilityBonuses {
		bonuses[client.AbilityName(bonus.AbilityScore.Index)] += bonus.Bonus
	}
	return core.Species{
		Name:           remote.Name,
		Speed:          remote.Speed,
		Size:           strings.ToLower(remote.Size),
		AbilityBonuses: bonuses,
		Languages:      client.Names(remote.Languages),
		Traits:         client.Names(remote.Traits),
	}
}

func toBackground(remote client.Background) core.Background {
	skills := make([]string, 0, len(remote.StartingProficiencies))
	for _, ref := range remote.StartingProficiencies {
		skills = append(skills, strings.TrimPrefix(ref.Name, "Skill: "))
	}
	return core.Background{
		Name:               remote.Name,
		Description:        strings.Join(remote.Feature.Desc, "\n"),
		SkillProficiencies: skills,
		Feature:            remote.Feature.Name,
	}
}

func toCategory(index string) core.ItemCategory {
	switch index {
	case "weapon":
		return core.ItemWeapon
	case "armor":
		return core.ItemArmor
	case "tools":
		return core.ItemTool
	default:
		return core.ItemGear
	}
}

func toItem(remote client.Equipment) core.Item {
	return core.Item{
		Name:        remote.Name,
		Category:    toCategory(remote.EquipmentCategory.Index),
		CostCP:      remote.Cost.CopperPieces(),
		Weight:      remote.Weight,
		Properties:  client.Names(remote.Properties),
		Description: strings.Join(remote.Desc, "\n"),
	}
}

func toSpell(remote client.Spell) core.Spell {
	return core.Spell{
		Name:          remote.Name,
		Level:         remote.Level,
		School:        core.SpellSchool(strings.ToLower(remote.School.Index)),
		CastingTime:   remote.CastingTime,
		Range:         remote.Range,
		Components:    remote.Components,
		Duration:      remote.Duration,
		Concentration: remote.Concentration,
		Ritual:        remote.Ritual,
		Classes:       client.Names(remote.Classes),
		Description:   strings.Join(remote.Desc, "\n"),
	}
}
