package boson

import (
	"regexp"
	"strconv"
	"strings"
)

var numericRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumericToken reports whether the entire token matches the
// integer-or-decimal grammar. Partial matches do not count.
func isNumericToken(tok string) bool {
	return numericRe.MatchString(tok)
}

// coerceNumeric converts a token that passed isNumericToken into an int
// or a float64 depending on whether it carries a decimal point.
func coerceNumeric(tok string) (any, error) {
	if strings.Contains(tok, ".") {
		return strconv.ParseFloat(tok, 64)
	}
	return strconv.Atoi(tok)
}

// isOptionShaped reports whether a token has the surface form of an
// option: a dash prefix that is not just a negative number. Negative
// numbers like -5 or -.5 are positional values, not switches.
func isOptionShaped(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	if tok == "--" {
		return false
	}
	rest := strings.TrimPrefix(tok, "-")
	rest = strings.TrimPrefix(rest, "-")
	if rest == "" {
		return false
	}
	if isDigit(rest[0]) || rest[0] == '.' {
		return false
	}
	return true
}
