package species

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

func TestHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockSpeciesService(ctrl)
	mockService.EXPECT().Update(gomock.Any(), DwarfID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, id string, species core.Species) (core.Species, error) {
			assert.Equal(t, "Dwarf", species.Name)
			assert.Equal(t, 25, species.Speed)
			assert.Equal(t, 2, species.AbilityBonuses["constitution"])
			species.ID = id
			return species, nil
		},
	)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPut, "/species/"+DwarfID, `{"name":"Dwarf","speed":25,"size":"medium","abilityBonuses":{"constitution":2}}`)
	c.Echo().Validator = validation.New()
	c.SetParamNames("id")
	c.SetParamValues(DwarfID)

	err := h.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var body core.ResponseBase[core.Species]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, DwarfID, body.Content.ID)
			assert.Equal(t, 25, body.Content.Speed)
		}
	}
}

func TestHandlerCreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mock_core.NewMockSpeciesService(ctrl))

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodPost, "/species", `{"name":"Dwarf","speed":3,"size":"medium"}`)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	details, ok := validation.Details(err)
	if assert.True(t, ok) {
		assert.Equal(t, []core.ErrorDetail{{Field: "speed", Rule: "min", Param: "5"}}, details)
	}
}

func TestHandlerDeleteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockSpeciesService(ctrl)
	mockService.EXPECT().Delete(gomock.Any(), DwarfID).Return(core.NewErrorNotFound())

	h := NewHandler(mockService)

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodDelete, "/species/"+DwarfID, "")
	c.SetParamNames("id")
	c.SetParamValues(DwarfID)

	err := h.Delete(c)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
