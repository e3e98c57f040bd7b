package countdown

import (
	"fmt"
	"time"
)

const (
	BadgeComingSoon = "Coming Soon"
	BadgeLive       = "Now Live"

	LabelTBD     = "Launch date TBD"
	LabelPending = "New experience begins soon"
	LabelLive    = "We're live. Welcome back."

	unknownField = "--"
)

// Display is the four-field countdown plus its badge and label copy.
type Display struct {
	Days    string
	Hours   string
	Minutes string
	Seconds string
	Badge   string
	Label   string
	Live    bool
}

// Remaining renders the countdown to target as of now. A zero target means the date is not set.
func Remaining(now, target time.Time) Display {
	if target.IsZero() {
		return Display{
			Days: unknownField, Hours: unknownField, Minutes: unknownField, Seconds: unknownField,
			Badge: BadgeComingSoon, Label: LabelTBD,
		}
	}
	diff := target.Sub(now)
	if diff <= 0 {
		return Display{
			Days: "00", Hours: "00", Minutes: "00", Seconds: "00",
			Badge: BadgeLive, Label: LabelLive, Live: true,
		}
	}
	sec := int64(diff / time.Second)
	days := sec / (3600 * 24)
	hours := (sec % (3600 * 24)) / 3600
	mins := (sec % 3600) / 60
	secs := sec % 60
	return Display{
		Days:    pad2(days),
		Hours:   pad2(hours),
		Minutes: pad2(mins),
		Seconds: pad2(secs),
		Badge:   BadgeComingSoon,
		Label:   LabelPending,
	}
}

// ParseLaunchDate accepts RFC 3339 with an explicit offset, e.g. "2026-03-15T10:00:00-05:00".
func ParseLaunchDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("launch date %q must be RFC 3339: %w", raw, err)
	}
	return t, nil
}

func PrettyDate(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Mon, Jan 02, 2006, 3:04 PM MST")
}

func (d Display) String() string {
	return fmt.Sprintf("%sd %sh %sm %ss  [%s] %s", d.Days, d.Hours, d.Minutes, d.Seconds, d.Badge, d.Label)
}

func pad2(n int64) string {
	return fmt.Sprintf("%02d", n)
}
