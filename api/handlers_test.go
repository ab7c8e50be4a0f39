package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/locumtruerate/comp-engine/api"
	"github.com/locumtruerate/comp-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := zaptest.NewLogger(t)
	handler := api.NewHandler(store, log)
	server := httptest.NewServer(api.NewRouter(handler, log))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func baselineBody() map[string]any {
	return map[string]any{
		"input": map[string]any{
			"baseHourlyRate":      85,
			"hoursPerWeek":        "40",
			"contractLengthWeeks": 13,
		},
	}
}

// =============================================================================
// CONTRACT ENDPOINT
// =============================================================================

func TestComputeContract_OK(t *testing.T) {
	server := newTestServer(t)

	// Numbers and strings both work for field values.
	resp := postJSON(t, server.URL+"/api/calculations/contract", baselineBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.CalculationResultDTO
	decode(t, resp, &result)

	assert.Equal(t, 13.0, result.WorkingWeeks)
	assert.Equal(t, 520.0, result.TotalHours)
	assert.Equal(t, 3400.0, result.WeeklyGrossPay)
	assert.Equal(t, 44200.0, result.TotalGrossContractValue)
	require.NotNil(t, result.TrueHourlyRate)
	assert.Equal(t, 85.0, *result.TrueHourlyRate)
	assert.Equal(t, "$44,200.00", result.Formatted.TotalGrossContractValue)
	assert.Equal(t, "$85.00/hr", result.Formatted.TrueHourlyRate)
	assert.Empty(t, result.ID, "unsaved runs carry no id")
}

func TestComputeContract_FieldErrors(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculations/contract", map[string]any{
		"input": map[string]any{
			"baseHourlyRate":      "eighty-five",
			"hoursPerWeek":        0,
			"contractLengthWeeks": 13,
			"weeksOff":            13,
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var failure api.ValidationFailureResponse
	decode(t, resp, &failure)

	byField := map[string]api.ValidationErrorDTO{}
	for _, e := range failure.Errors {
		byField[e.Field] = e
	}

	assert.Equal(t, "parse", byField["baseHourlyRate"].Kind)
	assert.Equal(t, "domain", byField["hoursPerWeek"].Kind)
	assert.Equal(t, "must be greater than zero", byField["hoursPerWeek"].Message)
	assert.Equal(t, "weeks off must be less than contract length", byField["weeksOff"].Message)
}

func TestComputeContract_MalformedBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/calculations/contract",
		"application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// PAYCHECK AND NORMALIZED ENDPOINTS
// =============================================================================

func TestComputePaycheck_Biweekly(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculations/paycheck", map[string]any{
		"input": map[string]any{
			"baseHourlyRate":       85,
			"hoursPerWeek":         40,
			"contractLengthWeeks":  13,
			"housingStipendWeekly": 1200,
			"payPeriod":            "biweekly",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var check api.PaycheckResultDTO
	decode(t, resp, &check)

	assert.Equal(t, "biweekly", check.Period)
	assert.Equal(t, 6800.0, check.BasePay)
	assert.Equal(t, 2400.0, check.Stipends)
	assert.Equal(t, 9200.0, check.GrossPay)
	assert.Equal(t, "$9,200.00", check.GrossPayText)
	assert.Equal(t, 44200.0+15600.0, check.Contract.TotalGrossContractValue)
}

func TestComputeNormalized_ShiftsPerWeekInformational(t *testing.T) {
	server := newTestServer(t)

	body := baselineBody()
	body["input"].(map[string]any)["shiftsPerWeek"] = 5

	resp := postJSON(t, server.URL+"/api/calculations/normalized", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.CalculationResultDTO
	decode(t, resp, &result)

	assert.Equal(t, 5.0, result.ShiftsPerWeek)
	assert.Equal(t, 44200.0, result.TotalGrossContractValue)
}

// =============================================================================
// COMPARISON ENDPOINT
// =============================================================================

func TestCompareOffers_RankedResponse(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculations/compare", map[string]any{
		"offers": []map[string]any{
			{
				"label": "Plain $95",
				"input": map[string]any{
					"baseHourlyRate":      95,
					"hoursPerWeek":        40,
					"contractLengthWeeks": 13,
				},
			},
			{
				"label": "Stipend $70",
				"input": map[string]any{
					"baseHourlyRate":       70,
					"hoursPerWeek":         40,
					"contractLengthWeeks":  13,
					"housingStipendWeekly": 2500,
				},
			},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Offers []api.RankedOfferDTO `json:"offers"`
	}
	decode(t, resp, &body)

	require.Len(t, body.Offers, 2)
	assert.Equal(t, "Stipend $70", body.Offers[0].Label)
	assert.Equal(t, 1, body.Offers[0].Rank)
	assert.Equal(t, "Plain $95", body.Offers[1].Label)
}

func TestCompareOffers_RequiresAtLeastTwo(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculations/compare", map[string]any{
		"offers": []map[string]any{
			{"label": "Only one", "input": map[string]any{}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// SAVED CALCULATIONS
// =============================================================================

func TestSaveListGetDelete(t *testing.T) {
	server := newTestServer(t)

	body := baselineBody()
	body["save"] = true
	body["label"] = "Mercy General 13wk"

	resp := postJSON(t, server.URL+"/api/calculations/contract", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.CalculationResultDTO
	decode(t, resp, &result)
	require.NotEmpty(t, result.ID)

	// List
	listResp, err := http.Get(server.URL + "/api/calculations")
	require.NoError(t, err)
	defer listResp.Body.Close()

	var saved []api.SavedCalculationDTO
	decode(t, listResp, &saved)
	require.Len(t, saved, 1)
	assert.Equal(t, result.ID, saved[0].ID)
	assert.Equal(t, "Mercy General 13wk", saved[0].Label)
	assert.Equal(t, "contract", saved[0].View)

	// Get
	getResp, err := http.Get(server.URL + "/api/calculations/" + result.ID)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var one api.SavedCalculationDTO
	decode(t, getResp, &one)
	assert.Equal(t, result.ID, one.ID)

	// The stored result replays what the client saw.
	var replay api.CalculationResultDTO
	require.NoError(t, json.Unmarshal(one.Result, &replay))
	assert.Equal(t, 44200.0, replay.TotalGrossContractValue)

	// Delete
	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/calculations/"+result.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusOK, delResp.StatusCode)

	// Gone
	goneResp, err := http.Get(server.URL + "/api/calculations/" + result.ID)
	require.NoError(t, err)
	defer goneResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, goneResp.StatusCode)
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

func TestListMileageRates(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/reference/mileage-rates")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rates []api.MileageRateDTO
	decode(t, resp, &rates)
	require.NotEmpty(t, rates)

	currents := 0
	for _, r := range rates {
		assert.Positive(t, r.Rate)
		if r.Current {
			currents++
		}
	}
	assert.Equal(t, 1, currents, "exactly one year is current")
}
