package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/equipment/mock"
	"github.com/totegamma/charsheet/x/listing"
)

func TestServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_equipment.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, item core.Item) (core.Item, error) {
			item.ID = "0e5c7a1b-2a7e-4a54-9a5f-c2a7b0d84001"
			return item, nil
		},
	)

	service := NewService(mockRepo)

	created, err := service.Create(context.Background(), core.Item{Name: "Longsword", Category: core.ItemWeapon, CostCP: 1500, Weight: 3})
	if assert.NoError(t, err) {
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 1500, created.CostCP)
	}
}

func TestServiceCreateRejectsCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_equipment.NewMockRepository(ctrl)

	service := NewService(mockRepo)

	_, err := service.Create(context.Background(), core.Item{Name: "Bag of Holding", Category: "wondrous"})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestServiceListOrdersByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_equipment.NewMockRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q listing.Query) (core.Page[core.Item], error) {
			assert.Equal(t, "name", q.Order[0].Column.Name)
			assert.False(t, q.Order[0].Desc)
			assert.Equal(t, "(category = ? AND weight < ?)", q.Where.Clause)
			assert.Equal(t, []any{"weapon", 5.5}, q.Where.Params)
			return core.Page[core.Item]{Items: []core.Item{}, Page: 1, PageSize: 20}, nil
		},
	)

	service := NewService(mockRepo)

	_, err := service.List(context.Background(), core.ListOptions{Filter: `category = "weapon" AND weight < 5.5`})
	assert.NoError(t, err)
}
