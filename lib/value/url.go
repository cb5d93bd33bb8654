// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// URL is an absolute http or https URL in normalized form: lower-case
// scheme and host, IDNA host names in their ASCII form, no default
// port, and "/" for an empty path.
type URL struct {
	text string
}

func (URL) Kind() Kind       { return KindURL }
func (URL) isValue()         {}
func (u URL) String() string { return u.text }

// URL returns the parsed form of u.
func (u URL) URL() *url.URL {
	parsed, err := url.Parse(u.text)
	if err != nil {
		// u.text was produced by url.URL.String during ParseURL.
		panic(fmt.Sprintf("value.URL: normalized URL %q does not parse: %v", u.text, err))
	}
	return parsed
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// ParseURL parses an absolute URL and requires the literal input to
// start with "http://" or "https://".
func ParseURL(raw string) (URL, error) {
	normalized, err := parseURL(raw)
	if err != nil {
		return URL{}, newError(InvalidURL, raw, err)
	}
	return URL{text: normalized}, nil
}

func parseURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", classifyURLError(err)
	}
	if !parsed.IsAbs() {
		return "", ErrRelativeURL
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrURLParse)
	}

	host, err := normalizeHost(parsed.Hostname(), strings.HasPrefix(parsed.Host, "["))
	if err != nil {
		return "", err
	}

	port := parsed.Port()
	if port != "" {
		number, err := strconv.ParseUint(port, 10, 64)
		if err != nil || number > 65535 {
			return "", fmt.Errorf("%w: port %s", ErrURLOverflow, port)
		}
		port = strconv.FormatUint(number, 10)
		if port == defaultPorts[parsed.Scheme] {
			port = ""
		}
	}
	if port != "" {
		host += ":" + port
	}
	parsed.Host = host

	if parsed.Path == "" && parsed.RawPath == "" {
		parsed.Path = "/"
	}
	return parsed.String(), nil
}

// normalizeHost validates a host name or IP literal and returns its
// canonical spelling. bracketed is true for "[...]" IPv6 literals.
func normalizeHost(hostname string, bracketed bool) (string, error) {
	if hostname == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidDomain)
	}
	if bracketed {
		address, err := netip.ParseAddr(hostname)
		if err != nil || !address.Is6() {
			return "", fmt.Errorf("%w %q", ErrInvalidIPv6Address, hostname)
		}
		return "[" + address.String() + "]", nil
	}
	if looksLikeIPv4(hostname) {
		address, err := netip.ParseAddr(hostname)
		if err != nil || !address.Is4() {
			return "", fmt.Errorf("%w %q", ErrInvalidIPv4Address, hostname)
		}
		return address.String(), nil
	}
	ascii, err := idna.Lookup.ToASCII(hostname)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidDomain, hostname, err)
	}
	return strings.ToLower(ascii), nil
}

// looksLikeIPv4 reports whether a host is made only of digits and dots
// and so must be read as an IPv4 address rather than a domain.
func looksLikeIPv4(host string) bool {
	for i := 0; i < len(host); i++ {
		c := host[i]
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// classifyURLError maps net/url failures onto the closed set of URL
// causes. net/url reports most failures as plain strings, so matching
// is on the message.
func classifyURLError(err error) error {
	var urlErr *url.Error
	inner := err
	if errors.As(err, &urlErr) {
		inner = urlErr.Err
	}
	var hostErr url.InvalidHostError
	if errors.As(inner, &hostErr) {
		return fmt.Errorf("%w: %v", ErrInvalidDomain, inner)
	}
	message := inner.Error()
	switch {
	case strings.Contains(message, "invalid port"):
		return fmt.Errorf("%w: %v", ErrInvalidPort, inner)
	case strings.Contains(message, "missing ']'"), strings.Contains(message, "IP-literal"), strings.Contains(message, "IPv6"):
		return fmt.Errorf("%w: %v", ErrInvalidIPv6Address, inner)
	case strings.Contains(message, "missing protocol scheme"):
		return ErrRelativeURL
	default:
		return fmt.Errorf("%w: %v", ErrURLParse, inner)
	}
}
