package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestParseFlexibleDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "rfc3339 with offset is normalised to utc",
			input:    "2025-06-01T18:30:00+02:00",
			expected: time.Date(2025, 6, 1, 16, 30, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 utc",
			input:    "2025-06-01T18:30:00Z",
			expected: time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
		},
		{
			name:     "local date time without seconds",
			input:    "2025-06-01T18:30",
			expected: time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
		},
		{
			name:     "plain date",
			input:    " 2025-06-01 ",
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "impossible day", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFlexibleDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDayRange(t *testing.T) {
	t.Parallel()

	start, end := DayRange(time.Date(2025, 6, 1, 23, 59, 0, 0, time.FixedZone("X", -3*3600)))

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), end)
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `50\% off\_now \\o/`, EscapeLike(`50% off_now \o/`))
	assert.Equal(t, "%Lagos%", ContainsPattern("Lagos"))
	assert.Equal(t, `%a\%b%`, ContainsPattern("a%b"))
}

func TestHashToken(t *testing.T) {
	t.Parallel()

	h := HashToken("token")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("token"))
	assert.NotEqual(t, h, HashToken("token2"))
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashToken("abc"))
}
