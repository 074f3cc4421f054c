// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/publicsuffix"
)

// Website cell handling.
//
// Input files carry websites as free-form cells ("https://www.Example.com/path",
// "acme.io", "www.globex.com"). CompanyNameFromWebsite turns such a cell into a
// cosmetic display name; it is best-effort only and never rejects its input.

// StripScheme removes a leading literal "https://" or "http://" prefix.
// The match is case-sensitive; anything else is left untouched.
func StripScheme(website string) string {
	website = strings.TrimPrefix(website, "https://")
	website = strings.TrimPrefix(website, "http://")
	return website
}

// FirstLabel returns the first dot-separated segment of a website cell after
// scheme and "www." stripping. For "www.Example.com/path" that is "Example".
func FirstLabel(website string) string {
	website = StripScheme(website)
	website = strings.TrimPrefix(website, "www.")
	if i := strings.Index(website, "."); i >= 0 {
		return website[:i]
	}
	return website
}

// TitleCase capitalizes the first letter of each whitespace-separated word
// and lowercases the remainder of the word.
func TitleCase(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	for i, word := range fields {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

// CompanyNameFromWebsite derives a display name from a website cell:
// strip scheme, strip "www.", take the first DNS label, title-case it.
// Malformed websites produce whatever falls out; duplicates pass through.
func CompanyNameFromWebsite(website string) string {
	return TitleCase(FirstLabel(website))
}

// Host extracts the host portion of a website cell: scheme, path, query and
// port are removed. No DNS resolution or validation is performed.
func Host(website string) string {
	host := StripScheme(strings.TrimSpace(website))
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host, "]") {
		host = host[:i]
	}
	return strings.ToLower(host)
}

// IsDomain reports whether a string looks like a DNS domain name.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	domainRegex := regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
	if !domainRegex.MatchString(domain) {
		return false
	}

	// Reject bare IPs
	if net.ParseIP(domain) != nil {
		return false
	}

	return true
}

// RegistrableDomain returns the eTLD+1 of a website cell's host using the
// public suffix list. The second return is false when the host has no
// registrable domain (empty cell, bare TLD, IP address, malformed input).
func RegistrableDomain(website string) (string, bool) {
	host := Host(website)
	if host == "" || !IsDomain(host) {
		return "", false
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", false
	}
	return etld1, true
}
