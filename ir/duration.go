package ir

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMixedSign     = errors.New("duration components have mixed signs")
	ErrDurationField = errors.New("duration component out of range")
)

var durationFields = [...]string{"days", "hours", "minutes", "seconds", "milliseconds"}

// Duration is a signed span of days, hours, minutes, seconds and
// milliseconds. Components are kept as written: 24 hours stays 24 hours
// rather than becoming a day. All non-zero components share one sign.
type Duration struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Millis  int64
}

// MakeDuration returns the duration with the given components after
// checking that they share a sign and that minutes, seconds and
// milliseconds are within a single unit of the next component.
func MakeDuration(days, hours, minutes, seconds, millis int64) (Duration, error) {
	d := Duration{Days: days, Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis}
	pos, neg := false, false
	for _, c := range d.components() {
		pos = pos || c > 0
		neg = neg || c < 0
	}
	if pos && neg {
		return Duration{}, fmt.Errorf("%w: %s", ErrMixedSign, d.debugString())
	}
	limits := [...]int64{0, 0, 60, 60, 1000}
	for i, c := range d.components() {
		if limits[i] == 0 {
			continue
		}
		if c >= limits[i] || c <= -limits[i] {
			return Duration{}, fmt.Errorf("%w: %s %d", ErrDurationField, durationFields[i], c)
		}
	}
	return d, nil
}

// DurationOf splits a time.Duration into days, hours, minutes, seconds
// and milliseconds. Precision below a millisecond is dropped.
func DurationOf(std time.Duration) Duration {
	ms := std.Milliseconds()
	sign := int64(1)
	if ms < 0 {
		sign, ms = -1, -ms
	}
	d := Duration{
		Millis:  ms % 1000,
		Seconds: ms / 1000 % 60,
		Minutes: ms / (60 * 1000) % 60,
		Hours:   ms / (60 * 60 * 1000) % 24,
		Days:    ms / (24 * 60 * 60 * 1000),
	}
	return d.scale(sign)
}

func (d Duration) components() [5]int64 {
	return [5]int64{d.Days, d.Hours, d.Minutes, d.Seconds, d.Millis}
}

func (d Duration) scale(k int64) Duration {
	return Duration{
		Days:    d.Days * k,
		Hours:   d.Hours * k,
		Minutes: d.Minutes * k,
		Seconds: d.Seconds * k,
		Millis:  d.Millis * k,
	}
}

// Negative reports whether the duration is less than zero.
func (d Duration) Negative() bool {
	for _, c := range d.components() {
		if c != 0 {
			return c < 0
		}
	}
	return false
}

// Neg returns the duration with every component negated.
func (d Duration) Neg() Duration {
	return d.scale(-1)
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Days)*24*time.Hour +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Millis)*time.Millisecond
}

// String formats d as a duration literal, for example "-5d:12:08:04.753".
func (d Duration) String() string {
	b := &strings.Builder{}
	if d.Negative() {
		b.WriteByte('-')
		d = d.Neg()
	}
	if d.Days != 0 {
		fmt.Fprintf(b, "%dd:", d.Days)
	}
	fmt.Fprintf(b, "%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
	if d.Millis != 0 {
		fmt.Fprintf(b, ".%03d", d.Millis)
	}
	return b.String()
}

func (d Duration) debugString() string {
	return fmt.Sprintf("{d=%d h=%d m=%d s=%d ms=%d}", d.Days, d.Hours, d.Minutes, d.Seconds, d.Millis)
}
