// Package domain – Purpose and category filtering
//
// This file defines the fixed three-way purpose taxonomy attached to every
// message at submission time, plus the purely functional category filter the
// dashboard applies to its last-fetched inbox. Filtering never requires a
// round trip: given the same input slice and filter, FilterByPurpose always
// yields the same subsequence.
package domain

import "strings"

// Purpose is the category tag assigned to a message when it is submitted.
// It is one of exactly three values and never changes afterwards.
type Purpose string

// The three allowed purpose values. Submissions carrying anything else are
// rejected at the boundary before any store mutation.
const (
	PurposeFeedback     Purpose = "feedback"
	PurposeSuggestion   Purpose = "suggestion"
	PurposeAppreciation Purpose = "appreciation"
)

// Valid reports whether p is one of the three enumerated purposes.
func (p Purpose) Valid() bool {
	switch p {
	case PurposeFeedback, PurposeSuggestion, PurposeAppreciation:
		return true
	}
	return false
}

// ParsePurpose normalizes raw input (case, surrounding whitespace) into a
// Purpose. The boolean result is false when the input is not one of the
// three enumerated values.
func ParsePurpose(raw string) (Purpose, bool) {
	p := Purpose(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// PurposeFilter selects a category when projecting an inbox: either one of
// the three purposes, or FilterAll for the unfiltered sequence.
type PurposeFilter string

// FilterAll selects every message regardless of purpose.
const FilterAll PurposeFilter = "all"

// ParsePurposeFilter normalizes raw input into a PurposeFilter. An empty
// string means "all". The boolean result is false for any other value that
// is neither "all" nor a valid purpose.
func ParsePurposeFilter(raw string) (PurposeFilter, bool) {
	f := PurposeFilter(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" || f == FilterAll {
		return FilterAll, true
	}
	if Purpose(f).Valid() {
		return f, true
	}
	return "", false
}

// FilterByPurpose returns the subsequence of msgs whose purpose matches the
// filter, preserving input order. With FilterAll it returns a copy of the
// full sequence. The input slice is never modified, so the projection can be
// re-derived from the same fetched sequence any number of times.
func FilterByPurpose(msgs []Message, filter PurposeFilter) []Message {
	out := make([]Message, 0, len(msgs))
	if filter == FilterAll {
		return append(out, msgs...)
	}
	want := Purpose(filter)
	for _, m := range msgs {
		if m.Purpose == want {
			out = append(out, m)
		}
	}
	return out
}
