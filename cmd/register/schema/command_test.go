// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/register/cmd/register/cli"
	libschema "github.com/bureau-foundation/register/lib/schema"
)

const countryTOML = `
id = "country"
label = "Country"
custodian = "Me"
primary-key = { id = "country", label = "Code" }

[[attributes]]
id = "name"
type = "string"
cardinality = "1"
label = "Name"

[[attributes]]
id = "borders"
type = "polygon"
cardinality = "n"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck(t *testing.T) {
	valid := writeFile(t, "country.toml", countryTOML)
	unknownField := writeFile(t, "bad.yaml", "id: x\nprimary-key: {id: x}\nattributes: [{id: y, type: bool, cardinality: '1'}]\nowner: me\n")

	var stdout, stderr bytes.Buffer
	if err := check([]string{valid}, &stdout, &stderr); err != nil {
		t.Fatalf("check: %v", err)
	}
	if stdout.String() != valid+": ok (country, 2 attributes)\n" {
		t.Errorf("stdout = %q", stdout.String())
	}

	stdout.Reset()
	err := check([]string{valid, unknownField}, &stdout, &stderr)
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("check error = %v, want exit code 1", err)
	}
	if !strings.HasPrefix(stderr.String(), unknownField+": ") || !strings.Contains(stderr.String(), "owner") {
		t.Errorf("stderr = %q, want the file and the unknown field", stderr.String())
	}
	if !strings.Contains(stdout.String(), valid+": ok") {
		t.Errorf("valid file not reported: %q", stdout.String())
	}
}

func TestShow(t *testing.T) {
	loaded, err := libschema.Load(writeFile(t, "country.toml", countryTOML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	digest, err := loaded.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	var output bytes.Buffer
	if err := show(loaded, digest.ID(), &output); err != nil {
		t.Fatalf("show: %v", err)
	}
	text := output.String()
	for _, want := range []string{
		"ID:          country\n",
		"Custodian:   Me\n",
		"Digest:      sha-256:" + digest.Hex() + "\n",
		"Primary key: country\n",
		"borders     [polygon]",
		"name        string",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("show output missing %q:\n%s", want, text)
		}
	}
}
