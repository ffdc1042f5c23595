package spell

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

const MagicMissileID = "7a1f0c55-2d4c-4ab4-9d5e-3c1e8b0a5001"

func TestHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockSpellService(ctrl)
	mockService.EXPECT().Update(gomock.Any(), MagicMissileID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, id string, spell core.Spell) (core.Spell, error) {
			assert.Equal(t, core.Evocation, spell.School)
			assert.Equal(t, []string{"V", "S"}, []string(spell.Components))
			spell.ID = id
			return spell, nil
		},
	)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPut, "/spells/"+MagicMissileID, `{"name":"Magic Missile","level":1,"school":"evocation","components":["V","S"],"classes":["Wizard"]}`)
	c.Echo().Validator = validation.New()
	c.SetParamNames("id")
	c.SetParamValues(MagicMissileID)

	err := h.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var body core.ResponseBase[core.Spell]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, MagicMissileID, body.Content.ID)
			assert.Equal(t, 1, body.Content.Level)
		}
	}
}

func TestHandlerCreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mock_core.NewMockSpellService(ctrl))

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodPost, "/spells", `{"name":"Wish","level":10,"school":"evocation","components":["X"]}`)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	details, ok := validation.Details(err)
	if assert.True(t, ok) {
		assert.ElementsMatch(t, []core.ErrorDetail{
			{Field: "level", Rule: "max", Param: "9"},
			{Field: "components[0]", Rule: "oneof", Param: "V S M"},
		}, details)
	}
}

func TestHandlerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockSpellService(ctrl)
	mockService.EXPECT().Delete(gomock.Any(), MagicMissileID).Return(nil)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodDelete, "/spells/"+MagicMissileID, "")
	c.SetParamNames("id")
	c.SetParamValues(MagicMissileID)

	err := h.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
