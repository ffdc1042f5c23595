package character

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

const createBody = `{
	"name": "Aria",
	"classId": "` + FighterID + `",
	"speciesId": "` + HumanID + `",
	"backgroundId": "` + SoldierID + `",
	"alignment": "lawful_good",
	"abilityScores": {"strength": 15, "dexterity": 12, "constitution": 14, "intelligence": 10, "wisdom": 10, "charisma": 8}
}`

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().Create(gomock.Any(), core.CharacterCreate{
		Name:          "Aria",
		ClassID:       FighterID,
		SpeciesID:     HumanID,
		BackgroundID:  SoldierID,
		Alignment:     core.LawfulGood,
		AbilityScores: scores(12, 14),
	}).Return(core.Character{ID: CharacterID, Name: "Aria", MaxHitPoints: 12}, nil)

	h := NewHandler(mockService)

	exporter := testutil.SetupMockTraceProvider()
	c, _, rec, traceID := testutil.CreateHttpRequest(http.MethodPost, "/characters", createBody)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, testutil.SpanNames(exporter.GetSpans(), traceID), "Character.Handler.Create")

		var body core.ResponseBase[core.Character]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, CharacterID, body.Content.ID)
			assert.Equal(t, 12, body.Content.MaxHitPoints)
		}
	}
}

func TestHandlerCreateOutOfRangeScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mock_core.NewMockCharacterService(ctrl))

	body := `{
		"name": "Aria",
		"classId": "` + FighterID + `",
		"speciesId": "` + HumanID + `",
		"backgroundId": "` + SoldierID + `",
		"alignment": "lawful_good",
		"abilityScores": {"strength": 15, "dexterity": 19, "constitution": 14, "intelligence": 10, "wisdom": 10, "charisma": 8}
	}`
	c, _, _, _ := testutil.CreateHttpRequest(http.MethodPost, "/characters", body)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	details, ok := validation.Details(err)
	if assert.True(t, ok) {
		assert.Equal(t, []core.ErrorDetail{{Field: "abilityScores.dexterity", Rule: "max", Param: "18"}}, details)
	}
}

func TestHandlerCreateBadAlignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mock_core.NewMockCharacterService(ctrl))

	body := `{"name": "Aria", "classId": "` + FighterID + `", "speciesId": "` + HumanID + `", "backgroundId": "` + SoldierID + `",
		"alignment": "chaotic_stupid", "abilityScores": {"strength": 15, "dexterity": 12, "constitution": 14, "intelligence": 10, "wisdom": 10, "charisma": 8}}`
	c, _, _, _ := testutil.CreateHttpRequest(http.MethodPost, "/characters", body)
	c.Echo().Validator = validation.New()

	err := h.Create(c)
	details, ok := validation.Details(err)
	if assert.True(t, ok) {
		assert.Equal(t, []core.ErrorDetail{{Field: "alignment", Rule: "alignment"}}, details)
	}
}

func TestHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	level := 5
	alignment := core.ChaoticGood

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().Update(gomock.Any(), CharacterID, core.CharacterPatch{
		Level:     &level,
		Alignment: &alignment,
	}).Return(core.Character{ID: CharacterID, Level: 5, ProficiencyBonus: 3}, nil)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPatch, "/characters/"+CharacterID, `{"level":5,"alignment":"chaotic_good"}`)
	c.Echo().Validator = validation.New()
	c.SetParamNames("id")
	c.SetParamValues(CharacterID)

	err := h.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHandlerUpdateAbilityScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().UpdateAbilityScores(gomock.Any(), CharacterID, core.AbilityScore{
		Strength:     20,
		Dexterity:    16,
		Constitution: 14,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     8,
	}).Return(core.Character{ID: CharacterID, ArmorClass: 13}, nil)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(
		http.MethodPut,
		"/characters/"+CharacterID+"/ability-scores",
		`{"strength":20,"dexterity":16,"constitution":14,"intelligence":10,"wisdom":10,"charisma":8}`,
	)
	c.Echo().Validator = validation.New()
	c.SetParamNames("id")
	c.SetParamValues(CharacterID)

	err := h.UpdateAbilityScores(c)
	if assert.NoError(t, err) {
		var body core.ResponseBase[core.Character]
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
			assert.Equal(t, 13, body.Content.ArmorClass)
		}
	}
}

func TestHandlerAddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().AddItem(gomock.Any(), CharacterID, LongswordID, 2, true).
		Return(core.CharacterItem{CharacterID: CharacterID, ItemID: LongswordID, Quantity: 2, Equipped: true}, nil)

	h := NewHandler(mockService)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/characters/"+CharacterID+"/items", `{"itemId":"`+LongswordID+`","quantity":2,"equipped":true}`)
	c.Echo().Validator = validation.New()
	c.SetParamNames("id")
	c.SetParamValues(CharacterID)

	err := h.AddItem(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().Get(gomock.Any(), CharacterID).Return(core.Character{}, core.NewErrorNotFound())

	h := NewHandler(mockService)

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodGet, "/characters/"+CharacterID, "")
	c.SetParamNames("id")
	c.SetParamValues(CharacterID)

	err := h.Get(c)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
