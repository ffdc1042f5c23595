package background

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/background/mock"
	"github.com/totegamma/charsheet/x/listing"
)

const SoldierID = "3a6f2b1e-9c4d-4e0a-8b7f-1d2c3e4f5a01"

func TestServiceCreateTrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_background.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), core.Background{Name: "Soldier", Feature: "Military Rank"}).
		Return(core.Background{ID: SoldierID, Name: "Soldier", Feature: "Military Rank"}, nil)

	service := NewService(mockRepo)

	created, err := service.Create(context.Background(), core.Background{ID: "ignored", Name: " Soldier ", Feature: "Military Rank"})
	if assert.NoError(t, err) {
		assert.Equal(t, SoldierID, created.ID)
	}
}

func TestServiceUpdateUsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_background.NewMockRepository(ctrl)
	mockRepo.EXPECT().Update(gomock.Any(), core.Background{ID: SoldierID, Name: "Soldier"}).
		Return(core.Background{ID: SoldierID, Name: "Soldier"}, nil)

	service := NewService(mockRepo)

	_, err := service.Update(context.Background(), SoldierID, core.Background{ID: "other", Name: "Soldier"})
	assert.NoError(t, err)
}

func TestServiceListDefaultOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_background.NewMockRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q listing.Query) (core.Page[core.Background], error) {
			if assert.Len(t, q.Order, 2) {
				assert.Equal(t, "c_date", q.Order[0].Column.Name)
				assert.True(t, q.Order[0].Desc)
				assert.Equal(t, "id", q.Order[1].Column.Name)
			}
			assert.Equal(t, listing.DefaultPageSize, q.PageSize)
			return core.Page[core.Background]{Items: []core.Background{}, Page: q.Page, PageSize: q.PageSize}, nil
		},
	)

	service := NewService(mockRepo)

	_, err := service.List(context.Background(), core.ListOptions{})
	assert.NoError(t, err)

	_, err = service.List(context.Background(), core.ListOptions{Filter: `feature = "x"`})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}
