package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, date types.Date) (domain.DayAvailability, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.DayAvailability), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/availability", strings.NewReader(body)))
	return rec
}

func TestHandle_Known(t *testing.T) {
	date := types.MustParseDate("2030-06-15")
	day := domain.NewDayAvailability(date, domain.SlotAvailable)
	day.Slots[domain.SlotEvening] = domain.SlotUnavailable

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, date).Return(day, nil)

	rec := post(NewHandler(uc, nopLogger{}), `{"booking_date":"2030-06-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2030-06-15", resp["date"])
	assert.Equal(t, true, resp["morning_available"])
	assert.Equal(t, true, resp["afternoon_available"])
	assert.Equal(t, false, resp["evening_available"])
	assert.Equal(t, "unavailable", resp["evening"])
	assert.NotContains(t, resp, "error")
	uc.AssertExpectations(t)
}

func TestHandle_CheckFailed(t *testing.T) {
	date := types.MustParseDate("2030-06-15")
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, date).Return(
		domain.NewDayAvailability(date, domain.SlotUnknown),
		fmt.Errorf("%w: timeout", checkAvailability.ErrAvailabilityCheckFailed),
	)

	rec := post(NewHandler(uc, nopLogger{}), `{"booking_date":"2030-06-15"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, key := range []string{"morning_available", "afternoon_available", "evening_available"} {
		assert.NotContains(t, resp, key)
	}
	assert.Equal(t, "unknown", resp["morning"])
	assert.Equal(t, "unknown", resp["afternoon"])
	assert.Equal(t, "unknown", resp["evening"])
	assert.Equal(t, "availability_check_failed", resp["error"].(map[string]interface{})["code"])
}

func TestHandle_BadInput(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "malformed", body: `{`, status: http.StatusBadRequest},
		{name: "missing date", body: `{}`, status: http.StatusBadRequest},
		{name: "bad date", body: `{"booking_date":"15.06.2030"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, post(h, tt.body).Code)
		})
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_UnexpectedError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(domain.DayAvailability{}, errors.New("boom"))

	rec := post(NewHandler(uc, nopLogger{}), `{"booking_date":"2030-06-15"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
