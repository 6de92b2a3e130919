package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-seat-layout/internal/config"
	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/logging"
	"github.com/iliyamo/cinema-seat-layout/internal/model"
	"github.com/iliyamo/cinema-seat-layout/internal/repository"
	"github.com/iliyamo/cinema-seat-layout/internal/service"
)

// memStore backs every store interface of the layout service.
type memStore struct {
	halls   map[uint64]*model.Hall
	layouts map[uint64]*model.HallLayout
	seats   map[uint64][]model.Seat
}

func newMemStore() *memStore {
	return &memStore{
		halls: map[uint64]*model.Hall{
			1: {ID: 1, OwnerID: 10, Name: "Main"},
			2: {ID: 2, OwnerID: 20, Name: "Foreign"},
		},
		layouts: map[uint64]*model.HallLayout{},
		seats:   map[uint64][]model.Seat{},
	}
}

func (m *memStore) GetByID(_ context.Context, id uint64) (*model.Hall, error) {
	if h, ok := m.halls[id]; ok {
		return h, nil
	}
	return nil, repository.ErrHallNotFound
}

func (m *memStore) UpdateDimensions(_ context.Context, id uint64, rows, cols int) error {
	m.halls[id].SeatRows, m.halls[id].SeatCols = &rows, &cols
	return nil
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memLayouts struct{ *memStore }

func (m memLayouts) GetByHall(_ context.Context, hallID uint64) (*model.HallLayout, error) {
	if l, ok := m.layouts[hallID]; ok {
		return l, nil
	}
	return nil, repository.ErrLayoutNotFound
}

func (m memLayouts) Upsert(_ context.Context, l *model.HallLayout) error {
	m.layouts[l.HallID] = l
	return nil
}

type memSeats struct{ *memStore }

func (m memSeats) ReplaceForHall(_ context.Context, hallID uint64, seats []model.Seat) error {
	m.seats[hallID] = seats
	return nil
}

func (m memSeats) GetByHall(_ context.Context, hallID uint64) ([]model.Seat, error) {
	return m.seats[hallID], nil
}

func newTestHandler(t *testing.T) (*LayoutHandler, *echo.Echo) {
	t.Helper()
	st := newMemStore()
	svc := service.NewLayoutService(nil, st, memLayouts{st}, memSeats{st}, st, nil,
		config.LayoutDefaults{Rows: 10, SeatsPerRow: 15, Aisles: []int{5, 10}}, logging.Discard())
	e := echo.New()
	e.Validator = NewRequestValidator()
	return NewLayoutHandler(svc, logging.Discard()), e
}

func call(e *echo.Echo, h echo.HandlerFunc, method, body string, userID any, hallID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}
	if hallID != "" {
		c.SetParamNames("id")
		c.SetParamValues(hallID)
	}
	_ = h(c)
	return rec
}

type viewBody struct {
	HallID   uint64         `json:"hall_id"`
	Revision string         `json:"revision"`
	Saved    bool           `json:"saved"`
	Config   layout.Config  `json:"config"`
	Grid     layout.Grid    `json:"grid"`
	Summary  layout.Summary `json:"summary"`
	Error    string         `json:"error"`
	Field    string         `json:"field"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) viewBody {
	t.Helper()
	var v viewBody
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

const scenarioA = `{"row_count":3,"seats_per_row":5,"aisle_after_seat":[2],"premium_rows":[3],"disabled_seats":[{"row":1,"seat":2}]}`

func TestPreview(t *testing.T) {
	h, e := newTestHandler(t)
	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"scenario A", scenarioA, http.StatusOK, ""},
		{"zero rows", `{"row_count":0,"seats_per_row":5}`, http.StatusUnprocessableEntity, "row_count"},
		{"aisle at edge", `{"row_count":3,"seats_per_row":5,"aisle_after_seat":[5]}`, http.StatusUnprocessableEntity, "aisle_after_seat"},
		{"disabled seat outside", `{"row_count":3,"seats_per_row":5,"disabled_seats":[{"row":3,"seat":1}]}`, http.StatusUnprocessableEntity, "disabled_seats"},
		{"malformed", `{"row_count":`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(e, h.Preview, http.MethodPost, tt.body, 10, "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.field != "" {
				if got := decode(t, rec).Field; got != tt.field {
					t.Fatalf("expected field %q, got %q", tt.field, got)
				}
			}
		})
	}

	rec := call(e, h.Preview, http.MethodPost, scenarioA, 10, "")
	v := decode(t, rec)
	if v.Summary.Total != 15 || v.Summary.Disabled != 1 || v.Summary.Premium != 5 {
		t.Fatalf("unexpected summary %+v", v.Summary)
	}
	if s := v.Grid[1][1]; s.ID != "B2" || s.Status != layout.StatusDisabled {
		t.Fatalf("unexpected seat %+v", s)
	}
}

func TestToggle(t *testing.T) {
	h, e := newTestHandler(t)
	tests := []struct {
		name     string
		body     string
		status   int
		disabled int
	}{
		{"by index", `{"config":` + scenarioA + `,"row_index":2,"seat_number":5}`, http.StatusOK, 2},
		{"by id re-enables", `{"config":` + scenarioA + `,"seat_id":"b2"}`, http.StatusOK, 0},
		{"row zero is valid", `{"config":` + scenarioA + `,"row_index":0,"seat_number":1}`, http.StatusOK, 2},
		{"out of bounds", `{"config":` + scenarioA + `,"row_index":3,"seat_number":1}`, http.StatusBadRequest, 0},
		{"bad seat id", `{"config":` + scenarioA + `,"seat_id":"5C"}`, http.StatusBadRequest, 0},
		{"no address", `{"config":` + scenarioA + `}`, http.StatusBadRequest, 0},
		{"no seat number", `{"config":` + scenarioA + `,"row_index":1}`, http.StatusBadRequest, 0},
		{"no config", `{"seat_id":"A1"}`, http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(e, h.Toggle, http.MethodPost, tt.body, 10, "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.status == http.StatusOK {
				if got := decode(t, rec).Summary.Disabled; got != tt.disabled {
					t.Fatalf("expected %d disabled, got %d", tt.disabled, got)
				}
			}
		})
	}
}

func TestResizeAndPremiumRow(t *testing.T) {
	h, e := newTestHandler(t)

	rec := call(e, h.Resize, http.MethodPost, `{"config":`+scenarioA+`,"rows":2,"seats_per_row":4}`, 10, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("resize: %d %s", rec.Code, rec.Body.String())
	}
	v := decode(t, rec)
	if v.Config.RowCount != 2 || len(v.Config.PremiumRows) != 0 || v.Summary.Disabled != 1 {
		t.Fatalf("expected pruned 2x4 layout, got %+v", v.Config)
	}

	rec = call(e, h.Resize, http.MethodPost, `{"config":`+scenarioA+`,"rows":21,"seats_per_row":4}`, 10, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	rec = call(e, h.TogglePremiumRow, http.MethodPost, `{"config":`+scenarioA+`,"row_number":1}`, 10, "")
	if rec.Code != http.StatusOK || decode(t, rec).Summary.Premium != 10 {
		t.Fatalf("premium row: %d %s", rec.Code, rec.Body.String())
	}
	rec = call(e, h.TogglePremiumRow, http.MethodPost, `{"config":`+scenarioA+`,"row_number":4}`, 10, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHallLayout(t *testing.T) {
	h, e := newTestHandler(t)

	rec := call(e, h.GetHallLayout, http.MethodGet, "", 10, "1")
	if rec.Code != http.StatusOK || decode(t, rec).Saved {
		t.Fatalf("expected unsaved default, got %d %s", rec.Code, rec.Body.String())
	}

	rec = call(e, h.SaveHallLayout, http.MethodPut, scenarioA, 10, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("save: %d %s", rec.Code, rec.Body.String())
	}
	saved := decode(t, rec)
	if !saved.Saved || saved.Revision == "" {
		t.Fatalf("expected revision, got %+v", saved)
	}

	rec = call(e, h.GetHallLayout, http.MethodGet, "", 10, "1")
	got := decode(t, rec)
	if !got.Saved || got.Revision != saved.Revision || got.Summary.Total != 15 {
		t.Fatalf("expected saved layout, got %+v", got)
	}

	rec = call(e, h.ListSeats, http.MethodGet, "", 10, "1")
	var seats struct {
		Count int          `json:"count"`
		Items []model.Seat `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &seats); err != nil || seats.Count != 15 {
		t.Fatalf("expected 15 seats, got %s", rec.Body.String())
	}

	tests := []struct {
		name   string
		h      echo.HandlerFunc
		method string
		body   string
		user   any
		hall   string
		status int
	}{
		{"invalid save", h.SaveHallLayout, http.MethodPut, `{"row_count":0,"seats_per_row":5}`, 10, "1", http.StatusUnprocessableEntity},
		{"foreign hall", h.GetHallLayout, http.MethodGet, "", 10, "2", http.StatusForbidden},
		{"foreign save", h.SaveHallLayout, http.MethodPut, scenarioA, 10, "2", http.StatusForbidden},
		{"missing hall", h.GetHallLayout, http.MethodGet, "", 10, "99", http.StatusNotFound},
		{"bad id", h.GetHallLayout, http.MethodGet, "", 10, "x", http.StatusBadRequest},
		{"no user", h.GetHallLayout, http.MethodGet, "", nil, "1", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(e, tt.h, tt.method, tt.body, tt.user, tt.hall)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestReadiness(t *testing.T) {
	e := echo.New()
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return context.DeadlineExceeded }

	rec := call(e, Readiness(map[string]Check{"db": ok}), http.MethodGet, "", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = call(e, Readiness(map[string]Check{"db": ok, "redis": down}), http.MethodGet, "", nil, "")
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), `"redis":"context deadline exceeded"`) {
		t.Fatalf("expected 503 naming redis, got %d %s", rec.Code, rec.Body.String())
	}
}
