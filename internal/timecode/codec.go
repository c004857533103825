// Package timecode converts between wall-clock time strings and the
// minutes-from-midnight domain the solver core operates in (spec §4.1).
package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shiftopt/dayplan/internal/domain"
)

// Parse converts "HH:MM:SS", or an ISO datetime whose time portion is the
// last "T"-delimited segment ("YYYY-MM-DDTHH:MM:SS"), into a Minute. It
// rejects out-of-range values and malformed strings with domain.ErrBadTimeFormat.
func Parse(s string) (domain.Minute, error) {
	timePart := s
	if idx := strings.LastIndex(s, "T"); idx >= 0 {
		timePart = s[idx+1:]
	}

	fields := strings.Split(timePart, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("%w: %q", domain.ErrBadTimeFormat, s)
	}

	hh, err := strconv.Atoi(fields[0])
	if err != nil || hh < 0 || hh > 24 {
		return 0, fmt.Errorf("%w: %q", domain.ErrBadTimeFormat, s)
	}
	mm, err := strconv.Atoi(fields[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", domain.ErrBadTimeFormat, s)
	}
	ss, err := strconv.Atoi(fields[2])
	if err != nil || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("%w: %q", domain.ErrBadTimeFormat, s)
	}
	if hh == 24 && (mm != 0 || ss != 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrBadTimeFormat, s)
	}

	_ = ss // seconds are accepted but carry no resolution in the Minute domain
	total := domain.Minute(hh*60 + mm)
	if total > domain.MinutesPerDay {
		return 0, fmt.Errorf("%w: %q out of range", domain.ErrBadTimeFormat, s)
	}
	return total, nil
}

// Format renders a Minute back as zero-padded "HH:MM:00". Seconds are
// always "00": the codec's domain has no sub-minute resolution.
func Format(m domain.Minute) string {
	if m == domain.MinutesPerDay {
		return "24:00:00"
	}
	h := int(m) / 60
	mm := int(m) % 60
	return fmt.Sprintf("%02d:%02d:00", h, mm)
}
