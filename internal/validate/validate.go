package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 -]{7,14}$`)
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Name validates a displayable customer or product name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Phone accepts international or local digit strings with optional + prefix.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Qty parses a quantity, clamping to [1, 50] to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Price parses a non-negative amount.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ImageURL accepts http(s) URLs only.
func ImageURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2048 {
		return "", false
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "", false
	}
	return s, true
}

// ID validates a simple resource identifier (product ids, cart ids,
// order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Password enforces a simple length window for credential changes.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 64
}
