/*
handlers.go - HTTP API handlers for the compensation service

PURPOSE:
  Exposes the compensation engine via REST. Handles HTTP request/response
  and JSON, delegates every calculation to the calculator views and the
  engine, and persists saved runs through the SQLite store.

ENDPOINTS:
  Calculations:
    POST   /api/calculations/contract    Contract Calculator
    POST   /api/calculations/paycheck    Paycheck Calculator
    POST   /api/calculations/normalized  Normalized Calculator
    POST   /api/calculations/compare     Rank offers by true hourly rate

  Saved calculations:
    GET    /api/calculations             List saved runs, newest first
    GET    /api/calculations/{id}        Fetch one saved run
    DELETE /api/calculations/{id}        Delete a saved run

  Reference:
    GET    /api/reference/mileage-rates  Published IRS mileage rates

ERROR HANDLING:
  - 400: malformed JSON or request-shape violations (label, offer bounds)
  - 422: calculation field errors - the engine's parse/domain list, so
         clients render inline messages without re-deriving them
  - 404: saved calculation not found
  - 500: store failures

SECURITY NOTE:
  No authentication; the service fronts a public calculator.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/locumtruerate/comp-engine/calculator"
	"github.com/locumtruerate/comp-engine/engine"
	"github.com/locumtruerate/comp-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	log      *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store *sqlite.Store, log *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		log:      log,
		validate: validator.New(),
	}
}

// =============================================================================
// CALCULATION ENDPOINTS
// =============================================================================

// ComputeContract evaluates the Contract Calculator field set.
// POST /api/calculations/contract
func (h *Handler) ComputeContract(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if !h.decodeAndCheck(w, r, &req) {
		return
	}

	result, errs := req.Input.contractForm().Evaluate()
	if errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			ValidationFailureResponse{Errors: toValidationErrorDTOs(errs)})
		return
	}

	dto := toCalculationResultDTO(result)
	h.maybeSave(w, r, &req, "contract", &dto)
}

// ComputeNormalized evaluates the Normalized Calculator field set,
// including the informational shiftsPerWeek.
// POST /api/calculations/normalized
func (h *Handler) ComputeNormalized(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if !h.decodeAndCheck(w, r, &req) {
		return
	}

	result, errs := req.Input.normalizedForm().Evaluate()
	if errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			ValidationFailureResponse{Errors: toValidationErrorDTOs(errs)})
		return
	}

	dto := toCalculationResultDTO(result)
	h.maybeSave(w, r, &req, "normalized", &dto)
}

// ComputePaycheck evaluates one pay period.
// POST /api/calculations/paycheck
func (h *Handler) ComputePaycheck(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if !h.decodeAndCheck(w, r, &req) {
		return
	}

	check, errs := req.Input.paycheckForm().Evaluate()
	if errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			ValidationFailureResponse{Errors: toValidationErrorDTOs(errs)})
		return
	}

	dto := toPaycheckResultDTO(check)

	if req.Save {
		id, ok := h.save(w, r, &req, "paycheck", dto)
		if !ok {
			return
		}
		dto.Contract.ID = id
	}
	writeJSON(w, http.StatusOK, dto)
}

// CompareOffers ranks a batch of offers by true hourly rate.
// POST /api/calculations/compare
func (h *Handler) CompareOffers(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !h.decodeAndCheck(w, r, &req) {
		return
	}

	offers := make([]calculator.Offer, len(req.Offers))
	for i, o := range req.Offers {
		offers[i] = calculator.Offer{
			Label: o.Label,
			Form:  o.Input.normalizedForm(),
		}
	}

	ranked := calculator.CompareOffers(offers)

	dtos := make([]RankedOfferDTO, len(ranked))
	for i, ro := range ranked {
		dto := RankedOfferDTO{Label: ro.Label, Rank: ro.Rank}
		if ro.Result != nil {
			result := toCalculationResultDTO(ro.Result)
			dto.Result = &result
		}
		if ro.Errors != nil {
			dto.Errors = toValidationErrorDTOs(ro.Errors)
		}
		dtos[i] = dto
	}

	writeJSON(w, http.StatusOK, map[string]any{"offers": dtos})
}

// =============================================================================
// SAVED CALCULATION ENDPOINTS
// =============================================================================

// ListCalculations returns saved calculations, newest first.
// GET /api/calculations
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	calcs, err := h.Store.List(r.Context())
	if err != nil {
		h.log.Error("list calculations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	dtos := make([]SavedCalculationDTO, len(calcs))
	for i, c := range calcs {
		dtos[i] = toSavedCalculationDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCalculation returns one saved calculation.
// GET /api/calculations/{id}
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	calc, err := h.Store.Get(r.Context(), id)
	if err != nil {
		h.log.Error("get calculation", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to get calculation", err)
		return
	}
	if calc == nil {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toSavedCalculationDTO(*calc))
}

// DeleteCalculation removes a saved calculation.
// DELETE /api/calculations/{id}
func (h *Handler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existed, err := h.Store.Delete(r.Context(), id)
	if err != nil {
		h.log.Error("delete calculation", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete calculation", err)
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// =============================================================================
// REFERENCE ENDPOINTS
// =============================================================================

// ListMileageRates returns the published IRS standard mileage rates.
// GET /api/reference/mileage-rates
func (h *Handler) ListMileageRates(w http.ResponseWriter, r *http.Request) {
	years := engine.MileageRateYears()
	dtos := make([]MileageRateDTO, 0, len(years))
	for _, year := range years {
		rate, _ := engine.IRSMileageRate(year)
		dtos = append(dtos, MileageRateDTO{
			Year:    year,
			Rate:    rate.Float64(),
			Current: year == engine.MileageRateYear,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

// decodeAndCheck decodes the body and runs request-shape validation.
// Calculation field semantics are the engine's job, not validator/v10's.
func (h *Handler) decodeAndCheck(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err)
		return false
	}
	return true
}

// maybeSave persists the result when requested, then writes the response.
func (h *Handler) maybeSave(w http.ResponseWriter, r *http.Request, req *CalculationRequest, view string, dto *CalculationResultDTO) {
	if req.Save {
		id, ok := h.save(w, r, req, view, dto)
		if !ok {
			return
		}
		dto.ID = id
	}
	writeJSON(w, http.StatusOK, dto)
}

// save persists a run and returns its id. On failure it writes the error
// response itself and returns ok=false.
func (h *Handler) save(w http.ResponseWriter, r *http.Request, req *CalculationRequest, view string, result any) (string, bool) {
	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode input", err)
		return "", false
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode result", err)
		return "", false
	}

	calc := sqlite.SavedCalculation{
		ID:         uuid.NewString(),
		Label:      req.Label,
		View:       view,
		InputJSON:  string(inputJSON),
		ResultJSON: string(resultJSON),
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Store.Save(r.Context(), calc); err != nil {
		h.log.Error("save calculation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save calculation", err)
		return "", false
	}

	h.log.Info("calculation saved",
		zap.String("id", calc.ID),
		zap.String("view", view),
		zap.String("label", req.Label))
	return calc.ID, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
