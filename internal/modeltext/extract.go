// Package modeltext decodes structured output embedded in free-form model
// replies. Models asked for JSON often wrap it in prose or a fenced code
// block; Extract applies a fixed fallback order (fenced block, then first
// balanced object, then failure) so every caller shares one decoding policy.
package modeltext

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no JSON object could be located in the text.
var ErrNoJSON = errors.New("no JSON object found in model output")

var fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// Extract returns the first JSON object found in raw, preferring a fenced
// code block over a bare object span.
func Extract(raw string) (string, error) {
	if m := fencedRe.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if span := firstObjectSpan(raw); span != "" {
		return span, nil
	}
	return "", ErrNoJSON
}

// Decode extracts a JSON object from raw and unmarshals it into v.
func Decode(raw string, v any) error {
	text, err := Extract(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("decoding model JSON: %w", err)
	}
	return nil
}

// firstObjectSpan scans for the first top-level {...} span, tracking brace
// depth and skipping braces inside string literals.
func firstObjectSpan(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
