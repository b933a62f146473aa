package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreHandler_List(t *testing.T) {
	router, _ := testAPI(t)
	runImport(t, router)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ScoreListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Run)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Suppliers, 2)
	assert.Equal(t, "S1", resp.Suppliers[0].SupplierID)
	assert.Equal(t, domain.TierA, resp.Suppliers[0].Tier)
}

func TestScoreHandler_List_BeforeFirstImport(t *testing.T) {
	router, _ := testAPI(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreHandler_GetBySupplierID(t *testing.T) {
	router, _ := testAPI(t)
	runImport(t, router)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores/S1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var scored domain.ScoredSupplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scored))
	assert.Equal(t, "Nordkomp", scored.Name)
	assert.Equal(t, 2, scored.LineCount)
	assert.Equal(t, 150000.0, scored.TotalRevenue)
}

func TestScoreHandler_GetBySupplierID_NotFound(t *testing.T) {
	router, _ := testAPI(t)
	runImport(t, router)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores/UNKNOWN", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreHandler_GetAdjusted(t *testing.T) {
	router, _ := testAPI(t)
	runImport(t, router)

	// No adjustments yet: the view mirrors the base score.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores/S2/adjusted", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.AdjustedView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Nil(t, view.Bonus)
	assert.Equal(t, view.TotalScore, view.FinalTotalScore)

	// Set a bonus, read again: margin recomputed, base fields untouched.
	rec = doRequest(t, router, http.MethodPut, "/api/v1/suppliers/S2/bonus",
		domain.SetBonusRequest{BonusAmount: 4500})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/v1/scores/S2/adjusted", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.NotNil(t, view.Bonus)
	assert.InDelta(t, 35.0, view.AdjustedMargin, 1e-9)
	assert.Equal(t, 2, view.AdjustedMarginScore)
	assert.InDelta(t, 6000.0, view.TotalGrossProfit, 1e-9, "stored base must stay unadjusted")
}

func TestScoreHandler_GetAdjusted_NotFound(t *testing.T) {
	router, _ := testAPI(t)
	runImport(t, router)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores/UNKNOWN/adjusted", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
