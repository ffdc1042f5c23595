package class

import (
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

	mockService := mock_core.NewMockClassService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), core.CharacterClass{
		Name:         "Fighter",
		HitDie:       core.D10,
		SavingThrows: []string{"strength", "constitution"},
	}).Return(core.CharacterClass{ID: FighterID, Name: "Fighter", HitDie: core.D10}, nil)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/classes", `{"name":"Fighter","hitDie":"d10","savingThrows":["strength","constitution"]}`)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body core.ResponseBase[core.CharacterClass]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, FighterID, body.Content.ID)
		}
	}
}

func TestHandlerCreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockClassService(ctrl)

	h := NewHandler(mockService)

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodPost, "/classes", `{"name":"Fighter","hitDie":"d20"}`)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	details, ok := validation.Details(err)
	if assert.True(t, ok) {
		assert.Equal(t, []core.ErrorDetail{{Field: "hitDie", Rule: "hitdie"}}, details)
	}
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockClassService(ctrl)
	mockService.EXPECT().Get(gomock.Any(), FighterID).Return(core.CharacterClass{}, core.NewErrorNotFound())

	h := NewHandler(mockService)

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodGet, "/classes/"+FighterID, "")
	c.SetParamNames("id")
	c.SetParamValues(FighterID)

	err := h.Get(c)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
