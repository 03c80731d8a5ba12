package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateRussianDate(t *testing.T) {
	assert.Equal(t, "Tue, 14 May 2024", translateRussianDate("Вт, 14 мая 2024"))
	assert.Equal(t, "Mon, 1 Jan 2024", translateRussianDate("Пн, 1 янв 2024"))
	assert.Equal(t, "May 2024", translateRussianDate("май 2024"))
	assert.Equal(t, "already english", translateRussianDate("already english"))
}

func TestParseFeedDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			"rfc1123z",
			"Tue, 14 May 2024 10:30:00 +0300",
			time.Date(2024, 5, 14, 7, 30, 0, 0, time.UTC),
		},
		{
			"russian weekday and month",
			"Вт, 14 мая 2024 10:30:00 +0300",
			time.Date(2024, 5, 14, 7, 30, 0, 0, time.UTC),
		},
		{
			"no zone is utc",
			"2024-05-14 10:30:00",
			time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC),
		},
		{
			"date only",
			"14 May 2024",
			time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFeedDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseFeedDate_Errors(t *testing.T) {
	_, err := parseFeedDate("")
	assert.Error(t, err)

	_, err = parseFeedDate("not a date at all")
	assert.Error(t, err)
}
