//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

type ClassService interface {
	Create(ctx context.Context, class CharacterClass) (CharacterClass, error)
	Get(ctx context.Context, id string) (CharacterClass, error)
	GetByName(ctx context.Context, name string) (CharacterClass, error)
	List(ctx context.Context, opts ListOptions) (Page[CharacterClass], error)
	Update(ctx context.Context, id string, class CharacterClass) (CharacterClass, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	CreateSubclass(ctx context.Context, classID string, subclass Subclass) (Subclass, error)
	GetSubclass(ctx context.Context, id string) (Subclass, error)
	ListSubclasses(ctx context.Context, classID string) ([]Subclass, error)
	DeleteSubclass(ctx context.Context, classID, subclassID string) error
}

type SpeciesService interface {
	Create(ctx context.Context, species Species) (Species, error)
	Get(ctx context.Context, id string) (Species, error)
	GetByName(ctx context.Context, name string) (Species, error)
	List(ctx context.Context, opts ListOptions) (Page[Species], error)
	Update(ctx context.Context, id string, species Species) (Species, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type BackgroundService interface {
	Create(ctx context.Context, background Background) (Background, error)
	Get(ctx context.Context, id string) (Background, error)
	GetByName(ctx context.Context, name string) (Background, error)
	List(ctx context.Context, opts ListOptions) (Page[Background], error)
	Update(ctx context.Context, id string, background Background) (Background, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ItemService interface {
	Create(ctx context.Context, item Item) (Item, error)
	Get(ctx context.Context, id string) (Item, error)
	GetByName(ctx context.Context, name string) (Item, error)
	List(ctx context.Context, opts ListOptions) (Page[Item], error)
	Update(ctx context.Context, id string, item Item) (Item, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type SpellService interface {
	Create(ctx context.Context, spell Spell) (Spell, error)
	Get(ctx context.Context, id string) (Spell, error)
	GetByName(ctx context.Context, name string) (Spell, error)
	List(ctx context.Context, opts ListOptions) (Page[Spell], error)
	Update(ctx context.Context, id string, spell Spell) (Spell, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CharacterService interface {
	Create(ctx context.Context, input CharacterCreate) (Character, error)
	Get(ctx context.Context, id string) (Character, error)
	List(ctx context.Context, opts ListOptions) (Page[Character], error)
	Update(ctx context.Context, id string, patch CharacterPatch) (Character, error)
	UpdateAbilityScores(ctx context.Context, id string, scores AbilityScore) (Character, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	ListItems(ctx context.Context, id string) ([]CharacterItem, error)
	AddItem(ctx context.Context, id, itemID string, quantity int, equipped bool) (CharacterItem, error)
	UpdateItem(ctx context.Context, id, itemID string, patch CharacterItemPatch) (CharacterItem, error)
	RemoveItem(ctx context.Context, id, itemID string) error

	ListSpells(ctx context.Context, id string) ([]CharacterSpell, error)
	LearnSpell(ctx context.Context, id, spellID string, prepared bool) (CharacterSpell, error)
	UpdateSpell(ctx context.Context, id, spellID string, prepared bool) (CharacterSpell, error)
	ForgetSpell(ctx context.Context, id, spellID string) error
}

// RecalculationService recomputes the stored derived stats of every character using a catalog row.
// Called with a transaction context it joins that transaction.
type RecalculationService interface {
	RecalculateClass(ctx context.Context, classID string) (int, error)
	RecalculateSpecies(ctx context.Context, speciesID string) (int, error)
}
