package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

var ErrBadZone = errors.New("invalid time zone")

// shortZones maps the three letter zone ids accepted in date-time
// literals to region names. The fixed ids are offsets with no rules.
var shortZones = map[string]string{
	"ACT": "Australia/Darwin",
	"AET": "Australia/Sydney",
	"AGT": "America/Argentina/Buenos_Aires",
	"ART": "Africa/Cairo",
	"AST": "America/Anchorage",
	"BET": "America/Sao_Paulo",
	"BST": "Asia/Dhaka",
	"CAT": "Africa/Harare",
	"CNT": "America/St_Johns",
	"CST": "America/Chicago",
	"CTT": "Asia/Shanghai",
	"EAT": "Africa/Addis_Ababa",
	"ECT": "Europe/Paris",
	"IET": "America/Indiana/Indianapolis",
	"IST": "Asia/Kolkata",
	"JST": "Asia/Tokyo",
	"MIT": "Pacific/Apia",
	"NET": "Asia/Yerevan",
	"NST": "Pacific/Auckland",
	"PLT": "Asia/Karachi",
	"PNT": "America/Phoenix",
	"PRT": "America/Puerto_Rico",
	"PST": "America/Los_Angeles",
	"SST": "Pacific/Guadalcanal",
	"VST": "Asia/Ho_Chi_Minh",
}

var fixedZones = map[string]int{
	"EST": -5 * 3600,
	"HST": -10 * 3600,
	"MST": -7 * 3600,
}

// LoadZone resolves a zone id as written after a date-time literal. It
// accepts the short ids above, UTC, GMT, UT and Z with an optional
// offset, bare +hh:mm offsets, and region names from the tz database.
func LoadZone(id string) (*time.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadZone)
	}
	if off, ok := fixedZones[id]; ok {
		return time.FixedZone(id, off), nil
	}
	if name, ok := shortZones[id]; ok {
		return loadRegion(id, name)
	}
	for _, pre := range []string{"UTC", "GMT", "UT", "Z"} {
		rest, ok := strings.CutPrefix(id, pre)
		if !ok {
			continue
		}
		if rest == "" {
			return time.FixedZone(id, 0), nil
		}
		if pre == "Z" {
			break
		}
		off, err := parseOffset(rest)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadZone, id, err)
		}
		return time.FixedZone(id, off), nil
	}
	if id[0] == '+' || id[0] == '-' {
		off, err := parseOffset(id)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadZone, id, err)
		}
		return time.FixedZone(id, off), nil
	}
	if id == "Local" {
		return nil, fmt.Errorf("%w %q", ErrBadZone, id)
	}
	return loadRegion(id, id)
}

func loadRegion(id, name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadZone, id, err)
	}
	return loc, nil
}

// parseOffset parses [+-]h, [+-]hh, [+-]hh:mm or [+-]hhmm into seconds
// east of UTC.
func parseOffset(s string) (int, error) {
	if len(s) < 2 || s[0] != '+' && s[0] != '-' {
		return 0, fmt.Errorf("malformed offset %q", s)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	hs, ms := s[1:], ""
	switch {
	case strings.Contains(hs, ":"):
		hs, ms, _ = strings.Cut(hs, ":")
	case len(hs) == 4:
		hs, ms = hs[:2], hs[2:]
	}
	if len(hs) > 2 || ms != "" && len(ms) != 2 {
		return 0, fmt.Errorf("malformed offset %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q", s)
	}
	m := 0
	if ms != "" {
		m, err = strconv.Atoi(ms)
		if err != nil {
			return 0, fmt.Errorf("malformed offset %q", s)
		}
	}
	if h > 18 || m > 59 || h == 18 && m > 0 {
		return 0, fmt.Errorf("offset %q out of range", s)
	}
	return sign * (h*3600 + m*60), nil
}

// FormatDate formats the date part of t as y/M/d.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%d/%d/%d", y, m, d)
}

// FormatDateTime formats t as y/M/d H:m:s.SSS, followed by "-zone" when
// zone is not empty.
func FormatDateTime(t time.Time, zone string) string {
	s := fmt.Sprintf("%s %d:%d:%d.%03d", FormatDate(t), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
	if zone != "" {
		s += "-" + zone
	}
	return s
}
