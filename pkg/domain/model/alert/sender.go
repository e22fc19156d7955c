package alert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsSender reports whether a user whose legacy identifier is legacyID raised
// an alert whose sender is senderID.
//
// User records created before the identifier migration carry a legacyId,
// written as a string or a number, while alerts carry the sender's ID in the
// current scheme. Both sides are coerced to numbers and compared by value.
// A value that is missing, empty or zero never matches, so a user without a
// legacyId, or an alert without a senderId, never causes exclusion.
func IsSender(legacyID, senderID any) bool {
	if !isPresent(legacyID) || !isPresent(senderID) {
		return false
	}

	a, ok := toNumber(legacyID)
	if !ok {
		return false
	}
	b, ok := toNumber(senderID)
	if !ok {
		return false
	}

	return a == b
}

// isPresent follows the truthiness of loosely typed document values: nil,
// false, zero, NaN and the empty string are absent.
func isPresent(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int64:
		return x != 0
	case int32:
		return x != 0
	case int16:
		return x != 0
	case int8:
		return x != 0
	case uint:
		return x != 0
	case uint64:
		return x != 0
	case uint32:
		return x != 0
	case uint16:
		return x != 0
	case uint8:
		return x != 0
	default:
		return true
	}
}

// toNumber converts v to a float64. It returns false where the conversion
// yields NaN.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case string:
		return parseNumber(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64:
		return x, !math.IsNaN(x)
	case float32:
		return float64(x), !math.IsNaN(float64(x))
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case int16:
		return float64(x), true
	case int8:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint8:
		return float64(x), true
	default:
		return 0, false
	}
}

// parseNumber parses numeric text the way loose numeric coercion does:
// surrounding whitespace is ignored, empty text is zero, 0x/0o/0b prefixes are
// accepted, and only the spelled-out Infinity is infinite.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if strings.Contains(s, "_") {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.ContainsAny(lower, "xp") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// textOf stringifies a loosely typed value. Absent values become "".
func textOf(v any) string {
	if !isPresent(v) {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatNumber(x)
	case float32:
		return formatNumber(float64(x))
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// formatNumber renders f in the shortest round-trip form. Magnitudes of 1e21
// and above, or below 1e-6, use exponent notation without exponent padding.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21 || (f != 0 && math.Abs(f) < 1e-6):
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// trimExponent turns "1e-07" into "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
