package ir

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestMakeDuration(t *testing.T) {
	tests := []struct {
		in      [5]int64
		want    string
		wantErr error
	}{
		{in: [5]int64{5, 11, 18, 24, 123}, want: "5d:11:18:24.123"},
		{in: [5]int64{-5, -12, -8, -4, -753}, want: "-5d:12:08:04.753"},
		{in: [5]int64{0, 0, 0, 0, 0}, want: "00:00:00"},
		{in: [5]int64{0, 36, 0, 0, 0}, want: "36:00:00"},
		{in: [5]int64{0, 0, 0, -5, 0}, want: "-00:00:05"},
		{in: [5]int64{1, -1, 0, 0, 0}, wantErr: ErrMixedSign},
		{in: [5]int64{0, 0, 60, 0, 0}, wantErr: ErrDurationField},
		{in: [5]int64{0, 0, 0, -60, 0}, wantErr: ErrDurationField},
		{in: [5]int64{0, 0, 0, 0, 1000}, wantErr: ErrDurationField},
	}
	for _, tc := range tests {
		d, err := MakeDuration(tc.in[0], tc.in[1], tc.in[2], tc.in[3], tc.in[4])
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("%v: got err %v want %v", tc.in, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		if got := d.String(); got != tc.want {
			t.Errorf("%v: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestDurationOf(t *testing.T) {
	tests := []struct {
		std  time.Duration
		want Duration
	}{
		{90 * time.Minute, Duration{Hours: 1, Minutes: 30}},
		{50*time.Hour + 1500*time.Millisecond, Duration{Days: 2, Hours: 2, Seconds: 1, Millis: 500}},
		{-(time.Hour + time.Millisecond), Duration{Hours: -1, Millis: -1}},
		{999 * time.Microsecond, Duration{}},
	}
	for _, tc := range tests {
		got := DurationOf(tc.std)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.std, diff)
		}
		if tc.std >= time.Millisecond || tc.std <= -time.Millisecond {
			if back := got.Std(); back != tc.std {
				t.Errorf("%s came back as %s", tc.std, back)
			}
		}
	}
}

func TestDurationNegative(t *testing.T) {
	d := Duration{Days: 1, Hours: 2}
	if d.Negative() {
		t.Error("positive duration reported negative")
	}
	if !d.Neg().Negative() {
		t.Error("negated duration not negative")
	}
	if (Duration{}).Negative() {
		t.Error("zero duration reported negative")
	}
	if got := d.Neg().Std(); got != -26*time.Hour {
		t.Errorf("Std: %s", got)
	}
}
