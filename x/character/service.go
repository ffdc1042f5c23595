package character

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/listing"
)

var listFields = listing.Fields{
	"id":               {Column: "id", Type: listing.String},
	"name":             {Column: "name", Type: listing.String},
	"level":            {Column: "level", Type: listing.Int},
	"alignment":        {Column: "alignment", Type: listing.String},
	"classId":          {Column: "class_id", Type: listing.String},
	"speciesId":        {Column: "species_id", Type: listing.String},
	"backgroundId":     {Column: "background_id", Type: listing.String},
	"experiencePoints": {Column: "experience_points", Type: listing.Int},
	"inspiration":      {Column: "inspiration", Type: listing.Bool},
	"armorClass":       {Column: "armor_class", Type: listing.Int},
	"maxHitPoints":     {Column: "max_hit_points", Type: listing.Int},
	"cdate":            {Column: "c_date", Type: listing.Timestamp},
	"mdate":            {Column: "m_date", Type: listing.Timestamp},
}

type service struct {
	repo       Repository
	class      core.ClassService
	species    core.SpeciesService
	background core.BackgroundService
	item       core.ItemService
	spell      core.SpellService
}

// NewService creates a new character service
func NewService(
	repo Repository,
	class core.ClassService,
	species core.SpeciesService,
	background core.BackgroundService,
	item core.ItemService,
	spell core.SpellService,
) core.CharacterService {
	return &service{
		repo,
		class,
		species,
		background,
		item,
		spell,
	}
}

// relationError turns a missing referenced object into a client error
func relationError(err error, name string) error {
	if errors.As(err, &core.ErrorNotFound{}) {
		return core.NewErrorInvalidArgument(name + " not found")
	}
	return err
}

func (s *service) checkClass(ctx context.Context, classID string) error {
	_, err := s.class.Get(ctx, classID)
	return relationError(err, "class")
}

func (s *service) checkSubclass(ctx context.Context, classID, subclassID string) error {
	subclass, err := s.class.GetSubclass(ctx, subclassID)
	if err != nil {
		return relationError(err, "subclass")
	}
	if subclass.ClassID != classID {
		return core.NewErrorInvalidArgument("subclass does not belong to class")
	}
	return nil
}

func (s *service) checkSpecies(ctx context.Context, speciesID string) error {
	_, err := s.species.Get(ctx, speciesID)
	return relationError(err, "species")
}

func (s *service) checkBackground(ctx context.Context, backgroundID string) error {
	_, err := s.background.Get(ctx, backgroundID)
	return relationError(err, "background")
}

func checkLevel(level int) error {
	if level < 1 || level > 20 {
		return core.NewErrorInvalidArgument("level must be between 1 and 20")
	}
	return nil
}

func (s *service) recalculate(ctx context.Context, id string) (core.Character, error) {
	return recalculate(ctx, s.repo, id)
}

func (s *service) Create(ctx context.Context, input core.CharacterCreate) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Create")
	defer span.End()

	if input.Level == 0 {
		input.Level = 1
	}
	if err := checkLevel(input.Level); err != nil {
		return core.Character{}, err
	}
	if input.SubclassID != nil && *input.SubclassID == "" {
		input.SubclassID = nil
	}

	if err := s.checkClass(ctx, input.ClassID); err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	if input.SubclassID != nil {
		if err := s.checkSubclass(ctx, input.ClassID, *input.SubclassID); err != nil {
			span.RecordError(err)
			return core.Character{}, err
		}
	}
	if err := s.checkSpecies(ctx, input.SpeciesID); err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	if err := s.checkBackground(ctx, input.BackgroundID); err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	character := core.Character{
		Name:             strings.TrimSpace(input.Name),
		ClassID:          input.ClassID,
		SubclassID:       input.SubclassID,
		SpeciesID:        input.SpeciesID,
		BackgroundID:     input.BackgroundID,
		Alignment:        input.Alignment,
		Level:            input.Level,
		ExperiencePoints: input.ExperiencePoints,
	}

	var result core.Character
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, character)
		if err != nil {
			return err
		}

		scores := input.AbilityScores
		scores.CharacterID = created.ID
		err = s.repo.UpsertAbilityScore(ctx, scores)
		if err != nil {
			return err
		}

		result, err = s.recalculate(ctx, created.ID)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to create character")
	}

	recalculations.WithLabelValues(core.RecalcCreate).Inc()

	return result, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, opts core.ListOptions) (core.Page[core.Character], error) {
	ctx, span := tracer.Start(ctx, "Character.Service.List")
	defer span.End()

	q, err := listing.Parse(opts, listFields, listing.DefaultOrder)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Character]{}, err
	}

	return s.repo.List(ctx, q)
}

// Update applies a partial update. A change of class, species or level recalculates
// the derived stats, which overrides any currentHitPoints in the same patch.
func (s *service) Update(ctx context.Context, id string, patch core.CharacterPatch) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Update")
	defer span.End()

	var result core.Character
	progressed := false

	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}

		var columns []string

		if patch.Name != nil {
			current.Name = strings.TrimSpace(*patch.Name)
			columns = append(columns, "name")
		}
		if patch.Alignment != nil {
			current.Alignment = *patch.Alignment
			columns = append(columns, "alignment")
		}
		if patch.ExperiencePoints != nil {
			current.ExperiencePoints = *patch.ExperiencePoints
			columns = append(columns, "experience_points")
		}
		if patch.TemporaryHitPoints != nil {
			current.TemporaryHitPoints = *patch.TemporaryHitPoints
			columns = append(columns, "temporary_hit_points")
		}
		if patch.Inspiration != nil {
			current.Inspiration = *patch.Inspiration
			columns = append(columns, "inspiration")
		}

		if patch.BackgroundID != nil && *patch.BackgroundID != current.BackgroundID {
			if err := s.checkBackground(ctx, *patch.BackgroundID); err != nil {
				return err
			}
			current.BackgroundID = *patch.BackgroundID
			columns = append(columns, "background_id")
		}

		if patch.Level != nil && *patch.Level != current.Level {
			if err := checkLevel(*patch.Level); err != nil {
				return err
			}
			current.Level = *patch.Level
			columns = append(columns, "level")
			progressed = true
		}

		if patch.SpeciesID != nil && *patch.SpeciesID != current.SpeciesID {
			if err := s.checkSpecies(ctx, *patch.SpeciesID); err != nil {
				return err
			}
			current.SpeciesID = *patch.SpeciesID
			columns = append(columns, "species_id")
			progressed = true
		}

		subclassChanged := false
		if patch.ClassID != nil && *patch.ClassID != current.ClassID {
			if err := s.checkClass(ctx, *patch.ClassID); err != nil {
				return err
			}
			current.ClassID = *patch.ClassID
			current.SubclassID = nil
			columns = append(columns, "class_id")
			subclassChanged = true
			progressed = true
		}

		if patch.SubclassID != nil {
			if *patch.SubclassID == "" {
				current.SubclassID = nil
			} else {
				if err := s.checkSubclass(ctx, current.ClassID, *patch.SubclassID); err != nil {
					return err
				}
				subclassID := *patch.SubclassID
				current.SubclassID = &subclassID
			}
			subclassChanged = true
		}
		if subclassChanged {
			columns = append(columns, "subclass_id")
		}

		if patch.CurrentHitPoints != nil && !progressed {
			if *patch.CurrentHitPoints > current.MaxHitPoints {
				return core.NewErrorInvalidArgument("currentHitPoints exceeds maxHitPoints")
			}
			current.CurrentHitPoints = *patch.CurrentHitPoints
			columns = append(columns, "current_hit_points")
		}

		err = s.repo.Update(ctx, current, columns)
		if err != nil {
			return err
		}

		if progressed {
			result, err = s.recalculate(ctx, id)
			return err
		}

		result, err = s.repo.Get(ctx, id)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to update character")
	}

	if progressed {
		recalculations.WithLabelValues(core.RecalcProgression).Inc()
	}

	return result, nil
}

func (s *service) UpdateAbilityScores(ctx context.Context, id string, scores core.AbilityScore) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.UpdateAbilityScores")
	defer span.End()

	var result core.Character
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return core.NewErrorNotFound()
		}

		scores.CharacterID = id
		err = s.repo.UpsertAbilityScore(ctx, scores)
		if err != nil {
			return err
		}

		result, err = s.recalculate(ctx, id)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to update ability scores")
	}

	recalculations.WithLabelValues(core.RecalcAbilityScore).Inc()

	return result, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Character.Service.Delete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

func (s *service) mustExist(ctx context.Context, id string) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return core.NewErrorNotFound()
	}
	return nil
}

func (s *service) ListItems(ctx context.Context, id string) ([]core.CharacterItem, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.ListItems")
	defer span.End()

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return s.repo.ListItems(ctx, id)
}

// AddItem puts an item into the inventory. Adding an item already owned increases its quantity.
func (s *service) AddItem(ctx context.Context, id, itemID string, quantity int, equipped bool) (core.CharacterItem, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.AddItem")
	defer span.End()

	if quantity <= 0 {
		quantity = 1
	}

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, err
	}

	item, err := s.item.Get(ctx, itemID)
	if err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, relationError(err, "item")
	}

	var result core.CharacterItem
	err = s.repo.Transaction(ctx, func(ctx context.Context) error {
		entry := core.CharacterItem{
			CharacterID: id,
			ItemID:      item.ID,
			Quantity:    quantity,
			Equipped:    equipped,
		}

		owned, err := s.repo.GetItem(ctx, id, item.ID)
		if err == nil {
			entry.Quantity += owned.Quantity
			entry.Equipped = entry.Equipped || owned.Equipped
		} else if !errors.As(err, &core.ErrorNotFound{}) {
			return err
		}

		result, err = s.repo.SaveItem(ctx, entry)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, errors.Wrap(err, "failed to add item")
	}

	result.Item = &item
	return result, nil
}

func (s *service) UpdateItem(ctx context.Context, id, itemID string, patch core.CharacterItemPatch) (core.CharacterItem, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.UpdateItem")
	defer span.End()

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, err
	}

	entry, err := s.repo.GetItem(ctx, id, itemID)
	if err != nil {
		span.RecordError(err)
		return core.CharacterItem{}, err
	}

	if patch.Quantity != nil {
		if *patch.Quantity < 1 {
			return core.CharacterItem{}, core.NewErrorInvalidArgument("quantity must be at least 1")
		}
		entry.Quantity = *patch.Quantity
	}
	if patch.Equipped != nil {
		entry.Equipped = *patch.Equipped
	}

	return s.repo.SaveItem(ctx, entry)
}

func (s *service) RemoveItem(ctx context.Context, id, itemID string) error {
	ctx, span := tracer.Start(ctx, "Character.Service.RemoveItem")
	defer span.End()

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	return s.repo.DeleteItem(ctx, id, itemID)
}

func (s *service) ListSpells(ctx context.Context, id string) ([]core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.ListSpells")
	defer span.End()

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return s.repo.ListSpells(ctx, id)
}

// LearnSpell adds a spell to the spellbook. Only characters of a spellcasting class can learn spells.
func (s *service) LearnSpell(ctx context.Context, id, spellID string, prepared bool) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.LearnSpell")
	defer span.End()

	character, err := s.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, err
	}

	if character.Class == nil || !character.Class.CanCast() {
		return core.CharacterSpell{}, core.NewErrorInvalidArgument("class has no spellcasting ability")
	}

	spell, err := s.spell.Get(ctx, spellID)
	if err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, relationError(err, "spell")
	}

	created, err := s.repo.CreateSpell(ctx, core.CharacterSpell{
		CharacterID: id,
		SpellID:     spell.ID,
		Spell:       &spell,
		Prepared:    prepared,
	})
	if err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, errors.Wrap(err, "failed to learn spell")
	}

	return created, nil
}

func (s *service) UpdateSpell(ctx context.Context, id, spellID string, prepared bool) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.UpdateSpell")
	defer span.End()

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, err
	}

	entry, err := s.repo.GetSpell(ctx, id, spellID)
	if err != nil {
		span.RecordError(err)
		return core.CharacterSpell{}, err
	}

	entry.Prepared = prepared
	return s.repo.UpdateSpell(ctx, entry)
}

func (s *service) ForgetSpell(ctx context.Context, id, spellID string) error {
	ctx, span := tracer.Start(ctx, "Character.Service.ForgetSpell")
	defer span.End()

	if err := s.mustExist(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	return s.repo.DeleteSpell(ctx, id, spellID)
}
