package background

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/core/mock"
	"github.com/totegamma/charsheet/internal/testutil"
	"github.com/totegamma/charsheet/x/validation"
)

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockBackgroundService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, background core.Background) (core.Background, error) {
			assert.Equal(t, "Soldier", background.Name)
			assert.Equal(t, []string{"Athletics", "Intimidation"}, []string(background.SkillProficiencies))
			background.ID = SoldierID
			return background, nil
		},
	)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/backgrounds", `{"name":"Soldier","skillProficiencies":["Athletics","Intimidation"],"feature":"Military Rank"}`)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body core.ResponseBase[core.Background]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, SoldierID, body.Content.ID)
			assert.Equal(t, "Military Rank", body.Content.Feature)
		}
	}
}

func TestHandlerCreateWithoutName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mock_core.NewMockBackgroundService(ctrl))

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodPost, "/backgrounds", `{"feature":"Military Rank"}`)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	details, ok := validation.Details(err)
	if assert.True(t, ok) {
		assert.Equal(t, []core.ErrorDetail{{Field: "name", Rule: "required"}}, details)
	}
}

func TestHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockBackgroundService(ctrl)
	mockService.EXPECT().List(gomock.Any(), core.ListOptions{Page: 2, PageSize: 5, OrderBy: "name"}).Return(core.Page[core.Background]{
		Items:    []core.Background{{ID: SoldierID, Name: "Soldier"}},
		Total:    6,
		Page:     2,
		PageSize: 5,
	}, nil)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/backgrounds?page=2&pageSize=5&orderBy=name", "")

	err := h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var body core.ResponseBase[core.Page[core.Background]]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, int64(6), body.Content.Total)
			assert.Len(t, body.Content.Items, 1)
		}
	}
}
