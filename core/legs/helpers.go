// Package legs - Parsing helpers for provider leg fields
package legs

import (
	"strconv"
	"strings"
	"unicode"
)

// cabinLabels maps the provider's single-letter cabin codes to display
// labels. Unknown codes are title-cased as-is.
var cabinLabels = map[string]string{
	"E": "Economy",
	"Y": "Economy",
	"W": "Premium Economy",
	"S": "Premium Economy",
	"C": "Business",
	"J": "Business",
	"F": "First",
	"P": "First",
}

// CabinLabel converts a cabin code into a readable label.
func CabinLabel(cabin string) string {
	if cabin == "" {
		return ""
	}
	upper := strings.ToUpper(strings.TrimSpace(cabin))
	if label, ok := cabinLabels[upper]; ok {
		return label
	}
	return titleCase(cabin)
}

// DurationMinutes parses the provider's duration shapes: plain minutes
// ("155"), hour/minute text ("2h 35m"), and clock form ("02:35"). Returns
// (0, false) when nothing parses.
func DurationMinutes(value string) (int, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(text); err == nil && n >= 0 {
		return n, true
	}

	if strings.Contains(text, ":") {
		parts := strings.SplitN(text, ":", 2)
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errM == nil && h >= 0 && m >= 0 {
			return h*60 + m, true
		}
		return 0, false
	}

	lower := strings.ToLower(text)
	if strings.ContainsAny(lower, "hm") {
		var total int
		var found bool
		var digits strings.Builder
		for _, r := range lower {
			switch {
			case unicode.IsDigit(r):
				digits.WriteRune(r)
			case r == 'h':
				if n, err := strconv.Atoi(digits.String()); err == nil {
					total += n * 60
					found = true
				}
				digits.Reset()
			case r == 'm':
				if n, err := strconv.Atoi(digits.String()); err == nil {
					total += n
					found = true
				}
				digits.Reset()
			default:
				digits.Reset()
			}
		}
		if found {
			return total, true
		}
	}

	return 0, false
}

// Stops parses the bound's stop-count text. Values like "Non-stop" or
// "Non|1+" collapse to their leading numeric component; "Non" means zero.
func Stops(value string) int {
	text := strings.ReplaceAll(strings.TrimSpace(value), "|", "")
	if text == "" {
		return 0
	}
	for i, r := range text {
		if r == '-' || r == '+' {
			text = text[:i]
			break
		}
	}
	if strings.EqualFold(text, "Non") {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
