// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Options is the flat options object of an ability as captured from the game.
// The game sends almost every value as a string; numbers are accepted and kept
// as their literal text so that arg parsing treats both forms alike.
type Options map[string]string

// UnmarshalJSON accepts any JSON object. Null values are dropped. Values that
// are neither strings nor numbers keep their raw text, which is never a valid
// integer.
func (o *Options) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Options, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		if len(value) == 0 || bytes.Equal(value, []byte("null")) {
			continue
		}
		if value[0] == '"' {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return fmt.Errorf("option %q: %w", key, err)
			}
			out[key] = s
			continue
		}
		out[key] = string(value)
	}
	*o = out
	return nil
}

// Value returns the raw text of the option and whether it was present.
func (o Options) Value(key string) (string, bool) {
	v, ok := o[key]
	return v, ok
}

// IntOK returns the option as an integer. ok is false if the option is
// missing or is not a base-10 integer.
func (o Options) IntOK(key string) (int, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Int returns the option as an integer or zero.
func (o Options) Int(key string) int {
	n, _ := o.IntOK(key)
	return n
}

// NonZero reports whether the option is present and not an integer zero.
// Non-numeric text counts as set.
func (o Options) NonZero(key string) bool {
	v, ok := o[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false
	}
	if n, ok := o.IntOK(key); ok {
		return n != 0
	}
	return true
}

// SlotKey returns the option key for a positional slot.
func SlotKey(slot int) string {
	return "arg" + strconv.Itoa(slot)
}

// MaxSlot is the number of positional argument slots on every ability.
const MaxSlot = 30
