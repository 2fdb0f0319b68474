package mediainfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value conversions are lenient: anything unparsable becomes the zero value.

func toUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 64)
	return uint(i)
}

func toFloat(s string) float32 {
	f, _ := strconv.ParseFloat(s, 64)
	return float32(f)
}

func toBool(s string) bool {
	return strings.EqualFold(s, "yes")
}

// Date layouts, newest library releases last.
// Fractional seconds are accepted by time.Parse without a layout element.
var timeLayouts = []string{
	"MST 2006-01-02 15:04:05", // UTC 2020-10-20 19:04:07
	"2006-01-02 15:04:05 MST", // 2020-10-20 19:04:07 UTC
	"2006-01-02T15:04:05Z07:00",
}

func toTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// encodedLibrary flattens Encoded_Library, which some containers report as an
// object with name and version members.
func encodedLibrary(v any) string {
	switch l := v.(type) {
	case nil:
		return ""
	case string:
		return l
	case map[string]any:
		name, _ := l["Name"].(string)
		version, _ := l["Version"].(string)
		if name != "" || version != "" {
			return strings.TrimSpace(name + " " + version)
		}
	}
	return fmt.Sprint(v)
}

// formatExtra turns a chapter key into a timestamp.
// _00_01_47_607 => 00:01:47.607
func formatExtra(s string) (string, bool) {
	if !strings.HasPrefix(s, "_") {
		return "", false
	}
	parts := strings.Split(s[1:], "_")
	if len(parts) != 4 {
		return "", false
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 64); err != nil {
			return "", false
		}
	}
	return strings.Join(parts[:3], ":") + "." + parts[3], true
}

// formatTime converts HH:MM:SS.mmm to seconds.
func formatTime(s string) float32 {
	hhmmss, frac, _ := strings.Cut(s, ".")
	parts := strings.Split(hhmmss, ":")
	if len(parts) != 3 {
		return 0
	}

	hh := toUint(parts[0]) * 60 * 60
	mm := toUint(parts[1]) * 60
	ss := toUint(parts[2])
	ms := float32(toUint(frac)) / 1000
	return float32(hh+mm+ss) + ms
}

// toFormatTimeStr converts seconds to HH:MM:SS.mmm.
func toFormatTimeStr(f float32) string {
	// Round to whole milliseconds first to avoid float32 drift.
	ms := int64(math.Round(float64(f) * 1000))
	t := time.Unix(0, ms*int64(time.Millisecond)).UTC()
	return t.Format("15:04:05.000")
}
