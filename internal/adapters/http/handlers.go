package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/ports"
	"luchik.app/trainers/internal/usecase"
)

// Request defaults applied when a field is absent from the body.
const (
	defaultTier     = 2
	defaultCount    = 10
	defaultSpeed    = 1.0
	defaultMaxDigit = 9
	defaultBrother  = 1
	defaultGridSize = 4
)

type Handler struct {
	UC     *usecase.Service
	V      ports.Validator
	Logger *zap.Logger
}

func New(uc *usecase.Service, v ports.Validator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{UC: uc, V: v, Logger: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/quick-math/session", h.handleQuickMath)
	mux.HandleFunc("/api/flash-cards/abacus/session", h.handleFlashCards)
	mux.HandleFunc("/api/brothers/session", h.handleBrothers)
	mux.HandleFunc("/api/schulte/session", h.handleSchulte)
	mux.HandleFunc("/api/stroop/session", h.handleStroop)
	mux.HandleFunc("/healthz", h.handleHealth)
}

type errorResp struct {
	Error  string              `json:"error"`
	Code   domain.Code         `json:"code,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code: coded parameter errors are the
// caller's fault, anything else is ours.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) && de.Code == domain.CodeInvalidParameter {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: de.Message, Code: de.Code, Fields: de.Fields})
		return
	}
	h.Logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	resp := errorResp{Error: err.Error()}
	if de != nil {
		resp.Code = de.Code
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}

// allow writes a 405 unless r uses method.
func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeJSON(w, http.StatusMethodNotAllowed, errorResp{Error: "method not allowed"})
		return false
	}
	return true
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return &domain.Error{
			Code:    domain.CodeInvalidParameter,
			Message: "invalid JSON: " + err.Error(),
			Cause:   err,
		}
	}
	return nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// ---- Quick math / flash cards ----

type quickMathReq struct {
	RangeKey    *int     `json:"range_key"`
	NumExamples *int     `json:"num_examples"`
	Speed       *float64 `json:"speed"`
	MaxDigit    *int     `json:"max_digit"`
	Seed        int64    `json:"seed"`
}

type flashCardsReq struct {
	Difficulty *int     `json:"difficulty"`
	Quantity   *int     `json:"quantity"`
	Speed      *float64 `json:"speed"`
	MaxDigit   *int     `json:"max_digit"`
	Seed       int64    `json:"seed"`
}

type statsResp struct {
	DurationMs int64 `json:"duration_ms"`
	Trials     int   `json:"trials,omitempty"`
	Passes     int   `json:"passes,omitempty"`
	Fallback   bool  `json:"fallback,omitempty"`
}

func toStats(st ports.Stats) statsResp {
	return statsResp{
		DurationMs: st.Duration.Milliseconds(),
		Trials:     st.Trials,
		Passes:     st.Passes,
		Fallback:   st.Fallback,
	}
}

type quickMathResp struct {
	*domain.Session
	Stats statsResp `json:"stats"`
}

type flashCardsResp struct {
	*domain.FlashSession
	Stats statsResp `json:"stats"`
}

// JSON names of the session fields per endpoint, keyed by validator field.
var (
	quickMathFields  = map[string]string{"count": "num_examples"}
	flashCardsFields = map[string]string{"range_key": "difficulty", "count": "quantity"}
)

// rename reports conflicts under the field names the client sent.
func rename(conflicts []domain.FieldError, names map[string]string) []domain.FieldError {
	for i, c := range conflicts {
		if wire, ok := names[c.Field]; ok {
			conflicts[i].Field = wire
		}
	}
	return conflicts
}

// sessionRequest validates the raw fields and converts them.
func (h *Handler) sessionRequest(r *http.Request, names map[string]string, tier, count, maxDigit int, speed float64, seed int64) (domain.SessionRequest, error) {
	ok, conflicts, err := h.V.ValidateSession(r.Context(), tier, maxDigit, count, speed)
	if err != nil {
		return domain.SessionRequest{}, err
	}
	if !ok {
		return domain.SessionRequest{}, domain.InvalidParameters(rename(conflicts, names))
	}
	return domain.SessionRequest{
		Tier:     domain.Tier(tier),
		MaxDigit: maxDigit,
		Count:    count,
		Speed:    speed,
		Seed:     seed,
	}, nil
}

func (h *Handler) handleQuickMath(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req quickMathReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	sr, err := h.sessionRequest(r, quickMathFields,
		intOr(req.RangeKey, defaultTier),
		intOr(req.NumExamples, defaultCount),
		intOr(req.MaxDigit, defaultMaxDigit),
		floatOr(req.Speed, defaultSpeed),
		req.Seed,
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, st, err := h.UC.QuickMath(r.Context(), sr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quickMathResp{Session: s, Stats: toStats(st)})
}

func (h *Handler) handleFlashCards(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req flashCardsReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	sr, err := h.sessionRequest(r, flashCardsFields,
		intOr(req.Difficulty, defaultTier),
		intOr(req.Quantity, defaultCount),
		intOr(req.MaxDigit, defaultMaxDigit),
		floatOr(req.Speed, defaultSpeed),
		req.Seed,
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, st, err := h.UC.FlashCards(r.Context(), sr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, flashCardsResp{FlashSession: s, Stats: toStats(st)})
}

// ---- Brothers ----

type brothersReq struct {
	Brother  *int     `json:"brother"`
	RangeKey *int     `json:"range_key"`
	Count    *int     `json:"count"`
	Speed    *float64 `json:"speed"`
	Seed     int64    `json:"seed"`
}

func (h *Handler) handleBrothers(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req brothersReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	br := domain.BrothersRequest{
		Brother: intOr(req.Brother, defaultBrother),
		Tier:    domain.Tier(intOr(req.RangeKey, defaultTier)),
		Count:   intOr(req.Count, defaultCount),
		Speed:   floatOr(req.Speed, defaultSpeed),
		Seed:    req.Seed,
	}
	ok, conflicts, err := h.V.ValidateBrothers(r.Context(), br.Brother, int(br.Tier), br.Count, br.Speed)
	if err == nil && !ok {
		err = domain.InvalidParameters(conflicts)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.UC.Brothers(r.Context(), br)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ---- Schulte / Stroop ----

// querySeed parses the optional seed parameter.
func querySeed(r *http.Request) (int64, []domain.FieldError) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return 0, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, []domain.FieldError{{Field: "seed", Message: "must be an integer"}}
	}
	return seed, nil
}

func (h *Handler) handleSchulte(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	seed, conflicts := querySeed(r)
	size := defaultGridSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			conflicts = append(conflicts, domain.FieldError{Field: "size", Message: "must be an integer"})
		}
		size = n
	}
	if len(conflicts) > 0 {
		h.writeError(w, r, domain.InvalidParameters(conflicts))
		return
	}
	ok, conflicts, err := h.V.ValidateSchulte(r.Context(), size)
	if err == nil && !ok {
		err = domain.InvalidParameters(conflicts)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	g, err := h.UC.Schulte(r.Context(), seed, size)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) handleStroop(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	seed, conflicts := querySeed(r)
	if len(conflicts) > 0 {
		h.writeError(w, r, domain.InvalidParameters(conflicts))
		return
	}
	level := domain.StroopNormal
	if raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("level"))); raw != "" {
		level = domain.StroopLevel(raw)
	}
	ok, conflicts, err := h.V.ValidateStroop(r.Context(), level)
	if err == nil && !ok {
		err = domain.InvalidParameters(conflicts)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.UC.Stroop(r.Context(), seed, level)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
