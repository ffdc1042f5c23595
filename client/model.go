package client

import (
	"strings"
)

// Reference is the {index, name, url} triple the SRD API uses for every link
type Reference struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

type ResourceList struct {
	Count   int         `json:"count"`
	Results []Reference `json:"results"`
}

type Class struct {
	Index        string        `json:"index"`
	Name         string        `json:"name"`
	HitDie       int           `json:"hit_die"`
	SavingThrows []Reference   `json:"saving_throws"`
	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`
	Subclasses   []Reference   `json:"subclasses"`
}

type Spellcasting struct {
	Ability Reference `json:"spellcasting_ability"`
}

type Subclass struct {
	Index string   `json:"index"`
	Name  string   `json:"name"`
	Desc  []string `json:"desc"`
}

type AbilityBonus struct {
	AbilityScore Reference `json:"ability_score"`
	Bonus        int       `json:"bonus"`
}

type Race struct {
	Index          string         `json:"index"`
	Name           string         `json:"name"`
	Speed          int            `json:"speed"`
	Size           string         `json:"size"`
	AbilityBonuses []AbilityBonus `json:"ability_bonuses"`
	Languages      []Reference    `json:"languages"`
	Traits         []Reference    `json:"traits"`
}

type Background struct {
	Index                 string      `json:"index"`
	Name                  string      `json:"name"`
	StartingProficiencies []Reference `json:"starting_proficiencies"`
	Feature               struct {
		Name string   `json:"name"`
		Desc []string `json:"desc"`
	} `json:"feature"`
}

type Cost struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

type Equipment struct {
	Index             string      `json:"index"`
	Name              string      `json:"name"`
	EquipmentCategory Reference   `json:"equipment_category"`
	Cost              Cost        `json:"cost"`
	Weight            float64     `json:"weight"`
	Properties        []Reference `json:"properties"`
	Desc              []string    `json:"desc"`
}

type Spell struct {
	Index         string      `json:"index"`
	Name          string      `json:"name"`
	Level         int         `json:"level"`
	School        Reference   `json:"school"`
	CastingTime   string      `json:"casting_time"`
	Range         string      `json:"range"`
	Components    []string    `json:"components"`
	Duration      string      `json:"duration"`
	Concentration bool        `json:"concentration"`
	Ritual        bool        `json:"ritual"`
	Classes       []Reference `json:"classes"`
	Desc          []string    `json:"desc"`
}

// Names returns the name of every reference
func Names(refs []Reference) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names
}

var abilities = map[string]string{
	"str": "strength",
	"dex": "dexterity",
	"con": "constitution",
	"int": "intelligence",
	"wis": "wisdom",
	"cha": "charisma",
}

// AbilityName maps an ability score index ("dex") to its full lower-case name ("dexterity")
func AbilityName(index string) string {
	if name, ok := abilities[strings.ToLower(index)]; ok {
		return name
	}
	return strings.ToLower(index)
}

// CopperPieces converts a cost to copper pieces
func (c Cost) CopperPieces() int {
	switch strings.ToLower(c.Unit) {
	case "pp":
		return c.Quantity * 1000
	case "gp":
		return c.Quantity * 100
	case "ep":
		return c.Quantity * 50
	case "sp":
		return c.Quantity * 10
	default:
		return c.Quantity
	}
}
