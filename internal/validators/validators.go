package validators

import (
	"net"
	"regexp"
	"strings"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsClockTime reports whether s is a zero-padded 24h "HH:MM" string.
func IsClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func IsDate(s string) bool {
	return datePattern.MatchString(s)
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
