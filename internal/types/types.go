// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, service, and storage can all import types without depending
// on each other.
package types

import (
	"encoding/json"
	"fmt"
)

// Gender is the closed set of values accepted for Student.Gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid reports whether g is one of the known constants.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// UnmarshalJSON rejects anything other than "MALE" or "FEMALE", so a bad
// value fails at decode time just like malformed JSON does.
//
// An empty string is let through: a missing gender is reported by the
// validator's "required" rule instead, with a field-level message.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("gender must be a string: %w", err)
	}

	v := Gender(s)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown gender %q: must be %s or %s", s, GenderMale, GenderFemale)
	}

	*g = v
	return nil
}

// Student represents a student record in our system.
//
// ID is assigned by the database. Request bodies are decoded into the
// handler's own request type, which has no id, so a client cannot set it.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender Gender `json:"gender"`
}
