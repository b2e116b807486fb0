// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*)?\}`)

// envExpander expands ${VAR} and ${VAR:-default} references.
type envExpander struct {
	// strict fails if a referenced variable without a default is unset.
	strict  bool
	missing []string
	lookup  func(string) (string, bool)
}

func (e *envExpander) Expand(input string) (string, error) {
	e.missing = nil
	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	result := envPattern.ReplaceAllStringFunc(input, func(match string) string {
		name, def, hasDefault := strings.Cut(match[2:len(match)-1], ":-")
		value, ok := lookup(name)
		switch {
		case ok && value != "":
			return value
		case hasDefault:
			return def
		case !ok && e.strict:
			e.missing = append(e.missing, name)
		}
		return value
	})

	if len(e.missing) > 0 {
		return "", fmt.Errorf("%w: unset environment variables: %s", ErrValidation, strings.Join(e.missing, ", "))
	}
	return result, nil
}
