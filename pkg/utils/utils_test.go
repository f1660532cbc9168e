package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-10-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("01/10/2025")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	start := time.Date(2025, 10, 30, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)

	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), dates[2])
	assert.Empty(t, DateRange(end, start))
	assert.Len(t, DateRange(start, start), 1)
}

func TestDelay(t *testing.T) {
	assert.NoError(t, Delay(context.Background(), 0))
	assert.NoError(t, Delay(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Delay(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, Delay(ctx, 0), context.Canceled)
}

func TestGeneratePrefixedID(t *testing.T) {
	id, err := GeneratePrefixedID("shift")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "shift_"))
	assert.Len(t, id, len("shift_")+6)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestMakeRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer EAAtoken" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"token"}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	body, err := MakeRequest(context.Background(), srv.Client(), srv.URL, "EAAtoken")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))

	body, err = MakeRequest(context.Background(), srv.Client(), srv.URL, "outro")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, string(body), "token")
}
