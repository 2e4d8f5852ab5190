// Package utils provides small, generic helpers used across layers. They
// are independent of domain logic.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 int. An empty s yields def; anything
// that strconv.Atoi rejects (including surrounding spaces and overflow)
// yields bad, letting callers tell "unset" from "malformed".
//
//	utils.AtoiDefault("42", -1, 5) // 42
//	utils.AtoiDefault("", -1, 5)   // 5
//	utils.AtoiDefault("x", -1, 5)  // -1
func AtoiDefault(s string, bad, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return bad
}
