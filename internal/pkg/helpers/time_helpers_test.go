package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClockSpanHours(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    float64
		wantErr bool
	}{
		{name: "whole hours", start: "09:00", end: "17:00", want: 8},
		{name: "fractional", start: "09:30", end: "10:15", want: 0.75},
		{name: "one minute", start: "12:00", end: "12:01", want: 1.0 / 60.0},
		{name: "end equals start", start: "09:00", end: "09:00", wantErr: true},
		{name: "end before start", start: "17:00", end: "09:00", wantErr: true},
		{name: "bad start", start: "9am", end: "17:00", wantErr: true},
		{name: "bad end", start: "09:00", end: "25:00", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClockSpanHours(tc.start, tc.end)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestParseClock(t *testing.T) {
	_, err := ParseClock("23:59")
	require.NoError(t, err)

	_, err = ParseClock("24:00")
	require.Error(t, err)
}
