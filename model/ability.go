// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// AbilityData is one ability as the game client sends it.
type AbilityData struct {
	CategoryID   IntString `json:"category_id"`
	ActionID     IntString `json:"action_id"`
	AbilityID    IntString `json:"ability_id"`
	ExerciseType IntString `json:"exercise_type"`
	Options      Options   `json:"options"`

	// SoulBreak is set by callers that know where the ability came from.
	// When nil, the counter_enable option decides.
	SoulBreak *bool `json:"-"`
}

// IntString is an identifier the game sends as a string holding an integer.
// Bare JSON numbers are accepted too.
type IntString string

func (s *IntString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) != 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = IntString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = IntString(n.String())
	return nil
}

// Int returns the identifier as an integer or zero.
func (s IntString) Int() int {
	n, _ := strconv.Atoi(strings.TrimSpace(string(s)))
	return n
}

// Ability is the converted, human-readable form of an ability.
// Nil pointers marshal as JSON null.
type Ability struct {
	School      *string    `json:"school"`
	Name        string     `json:"name"`
	Alias       *string    `json:"alias,omitempty"`
	NameGl      *string    `json:"nameGl,omitempty"`
	Type        *string    `json:"type"`
	Target      *string    `json:"target"`
	Formula     *string    `json:"formula"`
	Multiplier  *float64   `json:"multiplier"`
	Element     *string    `json:"element"`
	Time        float64    `json:"time"`
	Effects     *string    `json:"effects"`
	Counter     *bool      `json:"counter"`
	AutoTarget  *string    `json:"autoTarget"`
	SB          *int       `json:"sb"`
	ID          int        `json:"id"`
	ActionClass *string    `json:"actionClass"`
	Args        *NamedArgs `json:"args"`
}
