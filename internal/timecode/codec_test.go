package timecode

import (
	"testing"

	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainTime(t *testing.T) {
	m, err := Parse("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, domain.Minute(570), m)
}

func TestParse_ISODatetime(t *testing.T) {
	m, err := Parse("2026-07-31T14:05:00")
	require.NoError(t, err)
	assert.Equal(t, domain.Minute(14*60+5), m)
}

func TestParse_Midnight(t *testing.T) {
	m, err := Parse("00:00:00")
	require.NoError(t, err)
	assert.Equal(t, domain.Minute(0), m)
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"9:30",
		"9:30:00:00",
		"25:00:00",
		"09:60:00",
		"09:30:60",
		"abc:def:ghi",
	}
	for _, s := range cases {
		_, err := Parse(s)
		assert.ErrorIs(t, err, domain.ErrBadTimeFormat, "input %q", s)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	cases := []string{"00:00:00", "09:30:00", "23:59:00", "12:00:00", "24:00:00"}
	for _, s := range cases {
		m, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(m), "round trip for %q", s)
	}
}

func TestParse_MidnightBoundaryRejectsNonzeroMinutesSeconds(t *testing.T) {
	cases := []string{"24:01:00", "24:00:01", "25:00:00"}
	for _, s := range cases {
		_, err := Parse(s)
		assert.ErrorIs(t, err, domain.ErrBadTimeFormat, "input %q", s)
	}
}

func TestFormat_ZeroPadded(t *testing.T) {
	assert.Equal(t, "08:05:00", Format(domain.Minute(8*60+5)))
}
