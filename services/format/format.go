package format

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPrefixR = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	durationR     = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

// FormatCount turns a raw count like "1500" into "1.50K". Counts below a
// thousand are returned as parsed, non-numeric input yields "NaN".
func FormatCount(raw string) string {
	count := parseNumber(raw)
	if count >= 1000 {
		return toFixed2(count/1000) + "K"
	}
	return formatNumber(count)
}

// ParseDuration converts an ISO-8601 duration like "PT1H2M3S" into "1:02:03".
// Missing parts count as zero. Parts are kept as digit strings so values
// beyond int64 render in full.
func ParseDuration(raw string) string {
	var hours, minutes, seconds string
	if m := durationR.FindStringSubmatch(raw); m != nil {
		hours = trimZeros(m[1])
		minutes = trimZeros(m[2])
		seconds = trimZeros(m[3])
	}
	if hours != "0" {
		return hours + ":" + pad2(minutes) + ":" + pad2(seconds)
	}
	return minutes + ":" + pad2(seconds)
}

func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// parseNumber reads the longest numeric prefix, ignoring leading whitespace.
func parseNumber(raw string) float64 {
	m := numberPrefixR.FindString(strings.TrimLeft(raw, " \t\n\r\v\f"))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out of range values come back as ±Inf along with the error
		if math.IsInf(f, 0) {
			return f
		}
		return math.NaN()
	}
	return f
}

// toFixed2 renders a non-negative value with two decimals, rounding ties up
// on the exact binary value.
func toFixed2(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= 1e21 {
		return formatNumber(f)
	}
	r := new(big.Rat).SetFloat64(f)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom()).String()
	for len(n) < 3 {
		n = "0" + n
	}
	return n[:len(n)-2] + "." + n[len(n)-2:]
}

// formatNumber renders f in its shortest form, using exponent notation only
// for very small or very large magnitudes.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
