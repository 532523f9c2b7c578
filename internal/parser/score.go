package parser

import (
	"math"
	"strconv"
	"strings"
)

// NeutralScore is the fallback when a rating value cannot be parsed.
// Defaulting to the middle of the scale is a deliberate policy, not an
// error: the system prefers a usable record over a rejected row.
const NeutralScore = 5

// ParseScore maps a raw rating on an unknown scale to the canonical
// 0-10 NPS scale. Range checks run in a fixed priority: a value
// already in [0,10] is used as-is, a value in (10,100] is read as a
// percentage and divided by 10. A bare "4" therefore always means 4/10,
// never 4/5 stars — use ParseScoreScaled when the source is known to
// be a five-point scale.
func ParseScore(raw string) int {
	return ParseScoreScaled(raw, false)
}

// ParseScoreScaled is ParseScore with an explicit five-point-scale
// hint. With the hint set, a value in (0,5] is doubled before the
// generic range checks apply.
func ParseScoreScaled(raw string, fivePoint bool) int {
	v, ok := parseNumeric(raw)
	if !ok {
		return NeutralScore
	}
	return scaleScore(v, fivePoint)
}

func scaleScore(v float64, fivePoint bool) int {
	switch {
	case fivePoint && v > 0 && v <= 5:
		return int(math.Round(v * 2))
	case v >= 0 && v <= 10:
		return int(math.Round(v))
	case v > 10 && v <= 100:
		return int(math.Round(v / 10))
	case v > 100:
		return 10
	default:
		return 0
	}
}

// parseNumeric strips everything but digits, decimal points and a
// leading minus, then parses the remainder as a float.
func parseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	var b strings.Builder
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || (r == '-' && i == 0) {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
