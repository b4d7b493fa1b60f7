package allocate_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubagofish/scheduler-service/internal/domain"
	allocateSlots "github.com/ubagofish/scheduler-service/internal/usecase/allocate_slots"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *allocateSlots.Request
	resp   *allocateSlots.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *allocateSlots.Request) (*allocateSlots.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type fakeMetrics struct {
	kept, added, moved, skipped int
	observed                    bool
}

func (f *fakeMetrics) ObserveAllocation(kept, added, moved, skipped int) {
	f.observed = true
	f.kept, f.added, f.moved, f.skipped = kept, added, moved, skipped
}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/allocate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{
		resp: &allocateSlots.Response{
			Summaries: map[domain.Day]allocateSlots.DaySummary{
				domain.Monday: {Added: 1},
			},
			Total: allocateSlots.DaySummary{Added: 1},
			Placed: []domain.Appointment{
				{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "08:00"},
			},
		},
	}
	metrics := &fakeMetrics{}
	h := NewHandler(uc, metrics, noopLogger{})

	rec := doRequest(t, h, `{
		"buyers": ["B1"],
		"clients": ["C1"],
		"days": ["Monday"],
		"interval": 30,
		"balanceDays": true,
		"maxConsecutive": 4
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, []domain.Day{domain.Monday}, uc.gotReq.Days)
	assert.True(t, uc.gotReq.BalanceDays)
	assert.Equal(t, 4, uc.gotReq.MaxConsecutive)

	var resp AllocateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, DaySummaryResponse{Added: 1}, resp.Summaries["Monday"])
	assert.Equal(t, DaySummaryResponse{Added: 1}, resp.Total)
	require.Len(t, resp.Placed, 1)
	assert.Equal(t, "08:00", resp.Placed[0].Slot)

	assert.True(t, metrics.observed)
	assert.Equal(t, 1, metrics.added)
}

func TestHandleNilMetrics(t *testing.T) {
	uc := &fakeUseCase{resp: &allocateSlots.Response{}}
	h := NewHandler(uc, nil, noopLogger{})

	rec := doRequest(t, h, `{"buyers": [], "clients": [], "days": [], "interval": 30}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleMalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nil, noopLogger{})

	rec := doRequest(t, h, `{"buyers": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownDay(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nil, noopLogger{})

	rec := doRequest(t, h, `{"buyers": ["B1"], "clients": ["C1"], "days": ["Sunday"], "interval": 30}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: allocateSlots.ErrInvalidInput}
	h := NewHandler(uc, nil, noopLogger{})

	rec := doRequest(t, h, `{"buyers": ["B1"], "clients": ["C1"], "days": ["Monday"], "interval": 45}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInternalError(t *testing.T) {
	uc := &fakeUseCase{err: allocateSlots.ErrInternal}
	h := NewHandler(uc, nil, noopLogger{})

	rec := doRequest(t, h, `{"buyers": ["B1"], "clients": ["C1"], "days": ["Monday"], "interval": 30}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
