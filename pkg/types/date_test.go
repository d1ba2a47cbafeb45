package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2030-06-15", want: NewDate(2030, time.June, 15)},
		{name: "leap day", input: "2028-02-29", want: NewDate(2028, time.February, 29)},
		{name: "not a leap year", input: "2027-02-29", wantErr: true},
		{name: "day out of range", input: "2030-04-31", wantErr: true},
		{name: "missing zero padding", input: "2030-6-15", wantErr: true},
		{name: "with time component", input: "2030-06-15T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestDate_Compare(t *testing.T) {
	d := MustParseDate("2030-06-15")

	assert.True(t, d.Before(MustParseDate("2030-06-16")))
	assert.True(t, d.After(MustParseDate("2030-06-14")))
	assert.True(t, d.Equal(NewDate(2030, time.June, 15)))
	assert.Equal(t, MustParseDate("2030-07-01"), d.AddDays(16))
	assert.Equal(t, 16, d.DaysUntil(MustParseDate("2030-07-01")))
	assert.Equal(t, -1, d.DaysUntil(MustParseDate("2030-06-14")))
}

func TestDateOf_UsesLocationOfTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 22:30 UTC это уже следующий день в UTC+3
	instant := time.Date(2030, time.June, 15, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, MustParseDate("2030-06-15"), DateOf(instant))
	assert.Equal(t, MustParseDate("2030-06-16"), DateOf(instant.In(loc)))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2030-06-15", d.String())

	require.NoError(t, d.Scan([]byte("2031-01-02")))
	assert.Equal(t, "2031-01-02", d.String())

	require.NoError(t, d.Scan("2032-03-04T00:00:00Z"))
	assert.Equal(t, "2032-03-04", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.ErrorIs(t, d.Scan(42), ErrUnsupportedScanType)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2030-06-15"}`), &p))
	assert.Equal(t, MustParseDate("2030-06-15"), p.Date)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2030-06-15"}`, string(out))

	err = json.Unmarshal([]byte(`{"date":"15.06.2030"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
