// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault parses s as an int, falling back to def when s is empty or
// not a valid integer. Used for optional numeric query parameters such as
// ?limit= on the inbox list endpoint.
//
// Example:
//
//	limit := utils.AtoiDefault(c.Query("limit"), 0) // 0 means no cap
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
