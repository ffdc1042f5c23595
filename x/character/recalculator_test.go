package character

import (
	"context"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/character/mock"
)

const SecondCharacterID = "7c1f0a52-3d1e-4f65-9b3b-6a2a1e000010"

func TestRecalculateClassAfterHitDieChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_character.NewMockRepository(ctrl)
	recalc := NewRecalculator(mockRepo)

	// the class row already carries the new d12
	barbarian := &core.CharacterClass{ID: FighterID, HitDie: core.D12}
	stored := func(id string) core.Character {
		return core.Character{
			ID:           id,
			Level:        1,
			ClassID:      FighterID,
			Class:        barbarian,
			Species:      human(),
			MaxHitPoints: 10,
			AbilityScore: &core.AbilityScore{CharacterID: id, Dexterity: 10, Constitution: 14},
		}
	}

	mockRepo.EXPECT().ListIDsByClass(gomock.Any(), FighterID).Return([]string{CharacterID, SecondCharacterID}, nil)
	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	mockRepo.EXPECT().Get(gomock.Any(), CharacterID).Return(stored(CharacterID), nil)
	mockRepo.EXPECT().Get(gomock.Any(), SecondCharacterID).Return(stored(SecondCharacterID), nil)

	saved := map[string]int{}
	mockRepo.EXPECT().SaveDerived(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, character core.Character) error {
			saved[character.ID] = character.MaxHitPoints
			return nil
		},
	).Times(2)

	before := promtestutil.ToFloat64(recalculations.WithLabelValues(core.RecalcCatalog))

	count, err := recalc.RecalculateClass(context.Background(), FighterID)
	if assert.NoError(t, err) {
		assert.Equal(t, 2, count)
		assert.Equal(t, map[string]int{CharacterID: 14, SecondCharacterID: 14}, saved)
	}

	assert.Equal(t, before+2, promtestutil.ToFloat64(recalculations.WithLabelValues(core.RecalcCatalog)))
}

func TestRecalculateSpeciesWithoutCharacters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_character.NewMockRepository(ctrl)
	mockRepo.EXPECT().ListIDsBySpecies(gomock.Any(), HumanID).Return([]string{}, nil)

	count, err := NewRecalculator(mockRepo).RecalculateSpecies(context.Background(), HumanID)
	if assert.NoError(t, err) {
		assert.Equal(t, 0, count)
	}
}

func TestRecalculateSpeciesFailureKeepsMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_character.NewMockRepository(ctrl)
	mockRepo.EXPECT().ListIDsBySpecies(gomock.Any(), HumanID).Return([]string{CharacterID}, nil)
	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	mockRepo.EXPECT().Get(gomock.Any(), CharacterID).Return(core.Character{ID: CharacterID, Level: 1}, nil)
	mockRepo.EXPECT().SaveDerived(gomock.Any(), gomock.Any()).Return(core.NewErrorNotFound())

	before := promtestutil.ToFloat64(recalculations.WithLabelValues(core.RecalcCatalog))

	_, err := NewRecalculator(mockRepo).RecalculateSpecies(context.Background(), HumanID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	assert.Equal(t, before, promtestutil.ToFloat64(recalculations.WithLabelValues(core.RecalcCatalog)))
}
