package srd

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/client"
	"github.com/totegamma/charsheet/client/mock"
	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/core/mock"
	"github.com/totegamma/charsheet/internal/testutil"
)

const (
	WizardID = "0e3f4c1a-2a7c-4d5e-8f3a-6b1c00000001"
	ElfID    = "0e3f4c1a-2a7c-4d5e-8f3a-6b1c00000002"
)

type mocks struct {
	client     *mock_client.MockClient
	class      *mock_core.MockClassService
	species    *mock_core.MockSpeciesService
	background *mock_core.MockBackgroundService
	item       *mock_core.MockItemService
	spell      *mock_core.MockSpellService
}

func setup(t *testing.T) (Service, mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := mocks{
		client:     mock_client.NewMockClient(ctrl),
		class:      mock_core.NewMockClassService(ctrl),
		species:    mock_core.NewMockSpeciesService(ctrl),
		background: mock_core.NewMockBackgroundService(ctrl),
		item:       mock_core.NewMockItemService(ctrl),
		spell:      mock_core.NewMockSpellService(ctrl),
	}

	config := core.DefaultConfig()
	config.SRD.Concurrency = 2
	return NewService(m.client, m.class, m.species, m.background, m.item, m.spell, config), m
}

func TestImportClassesAndRaces(t *testing.T) {
	testutil.SetupMockTraceProvider()

	service, m := setup(t)

	m.client.EXPECT().List(gomock.Any(), Classes).Return([]client.Reference{{Index: "wizard", Name: "Wizard"}}, nil)
	m.client.EXPECT().GetClass(gomock.Any(), "wizard").Return(client.Class{
		Index:        "wizard",
		Name:         "Wizard",
		HitDie:       6,
		SavingThrows: []client.Reference{{Index: "int"}, {Index: "wis"}},
		Spellcasting: &client.Spellcasting{Ability: client.Reference{Index: "int"}},
		Subclasses:   []client.Reference{{Index: "evocation", Name: "Evocation"}},
	}, nil)
	m.class.EXPECT().GetByName(gomock.Any(), "Wizard").Return(core.CharacterClass{}, core.NewErrorNotFound())
	m.class.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
			assert.Equal(t, core.D6, class.HitDie)
			assert.Equal(t, "intelligence", class.SpellcastingAbility)
			assert.Equal(t, []string{"intelligence", "wisdom"}, []string(class.SavingThrows))
			class.ID = WizardID
			return class, nil
		},
	)
	m.class.EXPECT().ListSubclasses(gomock.Any(), WizardID).Return([]core.Subclass{}, nil)
	m.client.EXPECT().GetSubclass(gomock.Any(), "evocation").Return(client.Subclass{Index: "evocation", Name: "Evocation", Desc: []string{"Focus on evocation."}}, nil)
	m.class.EXPECT().CreateSubclass(gomock.Any(), WizardID, core.Subclass{Name: "Evocation", Description: "Focus on evocation."}).
		Return(core.Subclass{ClassID: WizardID, Name: "Evocation"}, nil)

	m.client.EXPECT().List(gomock.Any(), Races).Return([]client.Reference{{Index: "elf"}, {Index: "dwarf"}}, nil)
	m.client.EXPECT().GetRace(gomock.Any(), "elf").Return(client.Race{
		Name:           "Elf",
		Speed:          30,
		Size:           "Medium",
		AbilityBonuses: []client.AbilityBonus{{AbilityScore: client.Reference{Index: "dex"}, Bonus: 2}},
	}, nil)
	m.client.EXPECT().GetRace(gomock.Any(), "dwarf").Return(client.Race{}, errors.New("connection reset"))
	m.species.EXPECT().GetByName(gomock.Any(), "Elf").Return(core.Species{ID: ElfID, Name: "Elf"}, nil)
	m.species.EXPECT().Update(gomock.Any(), ElfID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, id string, species core.Species) (core.Species, error) {
			assert.Equal(t, "medium", species.Size)
			assert.Equal(t, core.AbilityBonuses{"dexterity": 2}, species.AbilityBonuses)
			species.ID = id
			return species, nil
		},
	)

	report, err := service.Import(context.Background(), []string{Classes, Races})
	if assert.NoError(t, err) {
		assert.Equal(t, Report{
			Classes: {Created: 1},
			Races:   {Updated: 1, Failed: 1},
		}, report)
	}
}

func TestImportUnknownResource(t *testing.T) {
	service, _ := setup(t)

	_, err := service.Import(context.Background(), []string{"monsters"})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestImportListFails(t *testing.T) {
	service, m := setup(t)

	m.client.EXPECT().List(gomock.Any(), Spells).Return(nil, errors.New("unreachable"))

	_, err := service.Import(context.Background(), []string{Spells})
	assert.Error(t, err)
}

func TestHandlerImport(t *testing.T) {
	service, m := setup(t)

	m.client.EXPECT().List(gomock.Any(), Equipment).Return([]client.Reference{{Index: "longsword"}}, nil)
	m.client.EXPECT().GetEquipment(gomock.Any(), "longsword").Return(client.Equipment{
		Name:              "Longsword",
		EquipmentCategory: client.Reference{Index: "weapon"},
		Cost:              client.Cost{Quantity: 15, Unit: "gp"},
		Weight:            3,
	}, nil)
	m.item.EXPECT().GetByName(gomock.Any(), "Longsword").Return(core.Item{}, core.NewErrorNotFound())
	m.item.EXPECT().Create(gomock.Any(), core.Item{
		Name:       "Longsword",
		Category:   core.ItemWeapon,
		CostCP:     1500,
		Weight:     3,
		Properties: []string{},
	}).Return(core.Item{Name: "Longsword"}, nil)

	h := NewHandler(service)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/admin/srd/import?resources=equipment", "")

	err := h.Import(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"equipment":{"created":1,"updated":0,"failed":0}`)
	}
}
