package spell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/spell/mock"
)

func TestServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_spell.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spell core.Spell) (core.Spell, error) {
			spell.ID = "7a1f0c55-2d4c-4ab4-9d5e-3c1e8b0a5001"
			return spell, nil
		},
	)

	service := NewService(mockRepo)

	created, err := service.Create(context.Background(), core.Spell{
		Name:       "Fire Bolt",
		Level:      0,
		School:     core.Evocation,
		Components: []string{"V", "S"},
	})
	if assert.NoError(t, err) {
		assert.NotEmpty(t, created.ID)
	}
}

func TestServiceCreateRejectsLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_spell.NewMockRepository(ctrl)

	service := NewService(mockRepo)

	_, err := service.Create(context.Background(), core.Spell{Name: "Wish+", Level: 10, School: core.Conjuration})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	_, err = service.Create(context.Background(), core.Spell{Name: "Sparkle", Level: 1, School: "glamour"})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestServiceGetByNameTrims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_spell.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetByName(gomock.Any(), "Shield").Return(core.Spell{Name: "Shield", Level: 1}, nil)

	service := NewService(mockRepo)

	found, err := service.GetByName(context.Background(), " Shield ")
	if assert.NoError(t, err) {
		assert.Equal(t, 1, found.Level)
	}
}
