// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package namedargs maps the thirty positional arguments of an ability to
// named fields using a per-action-class schema.
package namedargs

import (
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
)

// Slots holds the parsed positional arguments. Index 0 is unused.
type Slots [model.MaxSlot + 1]int

// ParseSlots parses arg1 through arg30. Every slot must be present and hold
// a base-10 integer.
func ParseSlots(opts model.Options) (Slots, error) {
	var slots Slots
	for i := 1; i <= model.MaxSlot; i++ {
		value, ok := opts.Value(model.SlotKey(i))
		if !ok {
			return slots, &MissingSlotError{Slot: i}
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return slots, &MalformedSlotError{Slot: i, Value: value}
		}
		slots[i] = n
	}
	return slots, nil
}

// Resolve returns the named arguments of an ability.
//
// Slot errors are returned as errors. An unknown action id or a class with no
// schema is logged and returns nil, nil.
func Resolve(r *gamedata.Region, actionID, abilityID int, opts model.Options) (*model.NamedArgs, error) {
	slots, err := ParseSlots(opts)
	if err != nil {
		return nil, err
	}

	action, schema := Lookup(r, actionID)
	if action == nil {
		log.Printf("warning: %s: unknown action id %d\n", r.Name(), actionID)
		return nil, nil
	} else if schema == nil {
		log.Printf("warning: %s: missing schema for class %s (action id %d)\n", r.Name(), action.ClassName, actionID)
		return nil, nil
	}

	m := mapper{slots: slots, args: model.NewNamedArgs(), claimed: map[int]bool{}}

	for _, field := range slices.Sorted(maps.Keys(schema.Args)) {
		if err := m.single(field, schema.Args[field]); err != nil {
			return nil, err
		}
	}
	for _, field := range slices.Sorted(maps.Keys(schema.MultiArgs)) {
		if err := m.multi(field, schema.MultiArgs[field]); err != nil {
			return nil, err
		}
	}

	// slots named by the action map; zero means "not used"
	if action.Elements != nil {
		if err := m.list(model.Elements, action.Elements.Args); err != nil {
			return nil, err
		}
	}
	for _, opt := range []struct {
		field model.Field
		slot  int
	}{
		{model.IgnoresReflection, action.IgnoresReflectionArg},
		{model.IgnoresMirageAndMightyGuard, action.IgnoresMirageAndMightyGuardArg},
		{model.IgnoresStatusAilmentsBarrier, action.IgnoresStatusAilmentsBarrierArg},
	} {
		if opt.slot == 0 {
			continue
		} else if err := m.single(opt.field, opt.slot); err != nil {
			return nil, err
		}
	}
	if err := m.list(model.BurstAbility, action.BurstAbilityArgs); err != nil {
		return nil, err
	}
	if action.SetSa != nil {
		if err := m.list(model.SetSaID, action.SetSa.Args); err != nil {
			return nil, err
		} else if err := m.list(model.SetSaBundle, action.SetSa.BundleArgs); err != nil {
			return nil, err
		}
	}
	if action.UnsetSa != nil {
		if err := m.list(model.UnsetSaID, action.UnsetSa.Args); err != nil {
			return nil, err
		} else if err := m.list(model.UnsetSaBundle, action.UnsetSa.BundleArgs); err != nil {
			return nil, err
		}
	}

	m.args.IsFlightAttack = action.IsFlightAttack || r.IsFlightAttackException(abilityID)

	for i := 1; i <= model.MaxSlot; i++ {
		if slots[i] == 0 || m.claimed[i] {
			continue
		}
		if m.args.Unknown == nil {
			m.args.Unknown = map[int]int{}
		}
		m.args.Unknown[i] = slots[i]
	}

	return m.args, nil
}

type mapper struct {
	slots   Slots
	args    *model.NamedArgs
	claimed map[int]bool
}

func (m *mapper) single(field model.Field, slot int) error {
	if slot < 1 || slot > model.MaxSlot {
		return &SlotRangeError{Field: field, Slot: slot}
	}
	m.args.Set(field, m.slots[slot])
	m.claimed[slot] = true
	return nil
}

// multi maps a schema slot list. Zero values are dropped.
func (m *mapper) multi(field model.Field, slots []int) error {
	values := []int{}
	for _, slot := range slots {
		if slot < 1 || slot > model.MaxSlot {
			return &SlotRangeError{Field: field, Slot: slot}
		}
		m.claimed[slot] = true
		if v := m.slots[slot]; v != 0 {
			values = append(values, v)
		}
	}
	m.args.SetList(field, values)
	return nil
}

// list maps an action map slot list. Slot zero is skipped; an empty list
// leaves the field unset.
func (m *mapper) list(field model.Field, slots []int) error {
	if len(slots) == 0 {
		return nil
	}
	var used []int
	for _, slot := range slots {
		if slot != 0 {
			used = append(used, slot)
		}
	}
	return m.multi(field, used)
}
