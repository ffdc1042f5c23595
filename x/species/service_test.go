package species

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/core/mock"
	"github.com/totegamma/charsheet/x/species/mock"
)

const DwarfID = "1c7e7d55-3f7e-4a7b-8c1e-5b1f0c2d3001"

func TestServiceCreateAppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_species.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, species core.Species) (core.Species, error) {
			assert.Equal(t, "Dwarf", species.Name)
			assert.Equal(t, 30, species.Speed)
			assert.NotNil(t, species.AbilityBonuses)
			species.ID = DwarfID
			return species, nil
		},
	)

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	created, err := service.Create(context.Background(), core.Species{Name: " Dwarf"})
	if assert.NoError(t, err) {
		assert.Equal(t, DwarfID, created.ID)
	}
}

func runInline(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestServiceUpdateSpeedRecalculatesCharacters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_species.NewMockRepository(ctrl)
	mockRecalc := mock_core.NewMockRecalculationService(ctrl)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	gomock.InOrder(
		mockRepo.EXPECT().Get(gomock.Any(), DwarfID).Return(core.Species{ID: DwarfID, Name: "Dwarf", Speed: 30}, nil),
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, species core.Species) (core.Species, error) {
				assert.Equal(t, DwarfID, species.ID)
				return species, nil
			},
		),
		mockRecalc.EXPECT().RecalculateSpecies(gomock.Any(), DwarfID).Return(2, nil),
	)

	service := NewService(mockRepo, mockRecalc)

	updated, err := service.Update(context.Background(), DwarfID, core.Species{
		Name:           "Dwarf",
		Speed:          25,
		AbilityBonuses: core.AbilityBonuses{"constitution": 2},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, 25, updated.Speed)
		assert.Equal(t, 2, updated.AbilityBonuses["constitution"])
	}
}

func TestServiceUpdateSameSpeedSkipsRecalculation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_species.NewMockRepository(ctrl)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	mockRepo.EXPECT().Get(gomock.Any(), DwarfID).Return(core.Species{ID: DwarfID, Name: "Dwarf", Speed: 25}, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, species core.Species) (core.Species, error) {
			return species, nil
		},
	)

	// no RecalculateSpecies expectation: a call fails the test
	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	_, err := service.Update(context.Background(), DwarfID, core.Species{Name: "Hill Dwarf", Speed: 25})
	assert.NoError(t, err)
}

func TestServiceDeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_species.NewMockRepository(ctrl)
	mockRepo.EXPECT().Delete(gomock.Any(), DwarfID).Return(core.NewErrorNotFound())

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	err := service.Delete(context.Background(), DwarfID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
