package class

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/core/mock"
	"github.com/totegamma/charsheet/internal/testutil"
	"github.com/totegamma/charsheet/x/class/mock"
	"github.com/totegamma/charsheet/x/listing"
)

const (
	FighterID  = "5b0d9f6e-7a59-4c1c-9a53-0f8c6f472001"
	ChampionID = "5b0d9f6e-7a59-4c1c-9a53-0f8c6f472002"
)

func TestServiceCreate(t *testing.T) {
	testutil.SetupMockTraceProvider()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
			assert.Empty(t, class.ID)
			assert.Equal(t, "Fighter", class.Name)
			assert.Nil(t, class.Subclasses)
			class.ID = FighterID
			return class, nil
		},
	)

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	created, err := service.Create(context.Background(), core.CharacterClass{
		ID:         "client-chosen",
		Name:       "  Fighter ",
		HitDie:     core.D10,
		Subclasses: []core.Subclass{{Name: "Champion"}},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, FighterID, created.ID)
	}
}

func TestServiceCreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.CharacterClass{}, core.NewErrorAlreadyExists())

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	_, err := service.Create(context.Background(), core.CharacterClass{Name: "Fighter", HitDie: core.D10})
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})
}

func TestServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q listing.Query) (core.Page[core.CharacterClass], error) {
			assert.Equal(t, "hit_die = ?", q.Where.Clause)
			assert.Equal(t, 1, q.Page)
			return core.Page[core.CharacterClass]{
				Items:    []core.CharacterClass{{ID: FighterID, Name: "Fighter"}},
				Total:    1,
				Page:     q.Page,
				PageSize: q.PageSize,
			}, nil
		},
	)

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	page, err := service.List(context.Background(), core.ListOptions{Filter: `hitDie = "d10"`})
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), page.Total)
		assert.Len(t, page.Items, 1)
	}

	_, err = service.List(context.Background(), core.ListOptions{OrderBy: "unknown"})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestServiceCreateSubclass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), FighterID).Return(core.CharacterClass{ID: FighterID, Name: "Fighter"}, nil)
	mockRepo.EXPECT().CreateSubclass(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, subclass core.Subclass) (core.Subclass, error) {
			assert.Equal(t, FighterID, subclass.ClassID)
			assert.Equal(t, "Champion", subclass.Name)
			subclass.ID = ChampionID
			return subclass, nil
		},
	)

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	created, err := service.CreateSubclass(context.Background(), FighterID, core.Subclass{Name: "Champion"})
	if assert.NoError(t, err) {
		assert.Equal(t, ChampionID, created.ID)
	}
}

func TestServiceCreateSubclassOfMissingClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), FighterID).Return(core.CharacterClass{}, core.NewErrorNotFound())

	service := NewService(mockRepo, mock_core.NewMockRecalculationService(ctrl))

	_, err := service.CreateSubclass(context.Background(), FighterID, core.Subclass{Name: "Champion"})
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}

func runInline(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestServiceUpdateKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRecalc := mock_core.NewMockRecalculationService(ctrl)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	mockRepo.EXPECT().Get(gomock.Any(), FighterID).Return(core.CharacterClass{ID: FighterID, Name: "Fighter", HitDie: core.D10}, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
			assert.Equal(t, FighterID, class.ID)
			return class, nil
		},
	)

	service := NewService(mockRepo, mockRecalc)

	updated, err := service.Update(context.Background(), FighterID, core.CharacterClass{Name: " Fighter", HitDie: core.D10})
	if assert.NoError(t, err) {
		assert.Equal(t, "Fighter", updated.Name)
	}
}

func TestServiceUpdateHitDieRecalculatesCharacters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRecalc := mock_core.NewMockRecalculationService(ctrl)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	gomock.InOrder(
		mockRepo.EXPECT().Get(gomock.Any(), FighterID).Return(core.CharacterClass{ID: FighterID, Name: "Fighter", HitDie: core.D8}, nil),
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, class core.CharacterClass) (core.CharacterClass, error) {
				return class, nil
			},
		),
		mockRecalc.EXPECT().RecalculateClass(gomock.Any(), FighterID).Return(3, nil),
	)

	service := NewService(mockRepo, mockRecalc)

	updated, err := service.Update(context.Background(), FighterID, core.CharacterClass{Name: "Fighter", HitDie: core.D12})
	if assert.NoError(t, err) {
		assert.Equal(t, core.D12, updated.HitDie)
	}
}

func TestServiceUpdateFailedRecalculationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_class.NewMockRepository(ctrl)
	mockRecalc := mock_core.NewMockRecalculationService(ctrl)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	mockRepo.EXPECT().Get(gomock.Any(), FighterID).Return(core.CharacterClass{ID: FighterID, HitDie: core.D8}, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(core.CharacterClass{ID: FighterID, HitDie: core.D6}, nil)
	mockRecalc.EXPECT().RecalculateClass(gomock.Any(), FighterID).Return(0, core.NewErrorNotFound())

	service := NewService(mockRepo, mockRecalc)

	_, err := service.Update(context.Background(), FighterID, core.CharacterClass{Name: "Fighter", HitDie: core.D6})
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
