// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/register/lib/digest"
)

const exampleDigest = "129332749e67eb9ab7390d7da2e88173367d001ac3e9e39f06e41690cd05e3ae"

func TestParseHash(t *testing.T) {
	raw := "sha-256:" + exampleDigest
	got, err := ParseHash(raw)
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if got.Algorithm != "sha-256" || got.Digest != exampleDigest {
		t.Errorf("ParseHash = %+v", got)
	}
	if got.String() != raw {
		t.Errorf("String() = %q, want %q", got.String(), raw)
	}
}

func TestParseHashRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"upper-case digest", "sha-256:" + strings.ToUpper(exampleDigest), ErrInvalidDigest},
		{"unknown algorithm", "md5:d41d8cd98f00b204e9800998ecf8427e", ErrUnknownAlgorithm},
		{"upper-case algorithm", "SHA-256:" + exampleDigest, ErrUnknownAlgorithm},
		{"empty digest", "sha-256:", ErrInvalidDigest},
		{"non-hex digest", "sha-256:xyz", ErrInvalidDigest},
		{"no separator", exampleDigest, ErrHashSeparator},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseHash(test.raw)
			if !errors.Is(err, test.want) {
				t.Fatalf("ParseHash(%q) = %v, want %v", test.raw, err, test.want)
			}
			var valueErr *Error
			if !errors.As(err, &valueErr) || valueErr.Code != InvalidHash {
				t.Errorf("code: %v, want InvalidHash", err)
			}
		})
	}
}

func TestHashErrorCause(t *testing.T) {
	_, err := ParseHash("blake3:abc")
	var valueErr *Error
	if !errors.As(err, &valueErr) {
		t.Fatalf("ParseHash error %T", err)
	}
	if got := valueErr.Cause().Error(); got != "invalid algorithm" {
		t.Errorf("Cause() = %q, want %q", got, "invalid algorithm")
	}
	if got := valueErr.Error(); got != "invalid hash: invalid algorithm" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHashOf(t *testing.T) {
	hash := HashOf(digest.SumString(`{"field1":"a","field2":"b"}`))
	if hash.String() != "sha-256:"+exampleDigest {
		t.Errorf("HashOf = %s", hash)
	}
	if _, err := ParseHash(hash.String()); err != nil {
		t.Errorf("HashOf output does not parse: %v", err)
	}
}

func TestParseCurie(t *testing.T) {
	tests := []struct {
		raw       string
		prefix    string
		reference string
	}{
		{"foaf:name", "foaf", "name"},
		{"country-code:GB", "country-code", "GB"},
		{"ab:c/d=e:f", "ab", "c/d=e:f"},
		{"x2:", "x2", ""},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			got, err := ParseCurie(test.raw)
			if err != nil {
				t.Fatalf("ParseCurie: %v", err)
			}
			if got.Prefix != test.prefix || got.Reference != test.reference {
				t.Errorf("ParseCurie = %+v", got)
			}
			if got.String() != test.raw {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestParseCurieRejects(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"nocolon", ErrCurieSeparator},
		{"x:y", ErrCuriePrefix},
		{"Foaf:name", ErrCuriePrefix},
		{"1ab:name", ErrCuriePrefix},
		{":name", ErrCuriePrefix},
		{"foaf:name:", ErrCurieReference},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			_, err := ParseCurie(test.raw)
			if !errors.Is(err, test.want) {
				t.Errorf("ParseCurie(%q) = %v, want %v", test.raw, err, test.want)
			}
		})
	}
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://example.org", "https://example.org/"},
		{"https://example.org/", "https://example.org/"},
		{"http://Example.ORG/a/b?c=d#e", "http://example.org/a/b?c=d#e"},
		{"http://example.org:80/x", "http://example.org/x"},
		{"https://example.org:443", "https://example.org/"},
		{"https://example.org:8443/x", "https://example.org:8443/x"},
		{"http://127.0.0.1:8080/", "http://127.0.0.1:8080/"},
		{"http://[::1]/", "http://[::1]/"},
		{"http://[2001:DB8:0:0:0:0:0:1]/", "http://[2001:db8::1]/"},
		{"http://bücher.example/", "http://xn--bcher-kva.example/"},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			got, err := ParseURL(test.raw)
			if err != nil {
				t.Fatalf("ParseURL: %v", err)
			}
			if got.String() != test.want {
				t.Errorf("ParseURL(%q) = %q, want %q", test.raw, got.String(), test.want)
			}
			if got.URL().Host == "" {
				t.Error("URL() has no host")
			}
		})
	}
}

func TestParseURLRejects(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"/relative/path", ErrRelativeURL},
		{"example.org/path", ErrRelativeURL},
		{"ftp://example.org/", ErrURLParse},
		{"mailto:someone@example.org", ErrURLParse},
		{"HTTP://example.org/", ErrURLParse},
		{"http://example.org:abc/", ErrInvalidPort},
		{"http://example.org:99999/", ErrURLOverflow},
		{"http://256.1.1.1/", ErrInvalidIPv4Address},
		{"http://1.2.3/", ErrInvalidIPv4Address},
		{"http://[::1/", ErrInvalidIPv6Address},
		{"http://exa mple.org/", ErrInvalidDomain},
		{"http:///path", ErrInvalidDomain},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			_, err := ParseURL(test.raw)
			if !errors.Is(err, test.want) {
				t.Errorf("ParseURL(%q) = %v, want %v", test.raw, err, test.want)
			}
			var valueErr *Error
			if !errors.As(err, &valueErr) || valueErr.Code != InvalidURL {
				t.Errorf("code: %v, want InvalidURL", err)
			}
		})
	}
}
