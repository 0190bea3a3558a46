// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package namedargs

import (
	"fmt"

	"github.com/mdhender/ffrkconv/model"
)

// MissingSlotError is returned when an arg slot is absent from the options.
type MissingSlotError struct {
	Slot int
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("missing arg%d", e.Slot)
}

// MalformedSlotError is returned when an arg slot is not a base-10 integer.
type MalformedSlotError struct {
	Slot  int
	Value string
}

func (e *MalformedSlotError) Error() string {
	return fmt.Sprintf("bad arg%d %q", e.Slot, e.Value)
}

// SlotRangeError is returned when a schema refers to a slot outside 1..30.
type SlotRangeError struct {
	Field model.Field
	Slot  int
}

func (e *SlotRangeError) Error() string {
	return fmt.Sprintf("%s: slot %d out of range 1..%d", e.Field, e.Slot, model.MaxSlot)
}
