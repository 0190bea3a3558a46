// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Field is the name of a resolved argument. Names follow the game client so
// that curated and extracted schemas agree.
type Field string

const (
	AtkElement                           Field = "atkElement"
	AtkExponentialFactor                 Field = "atkExponentialFactor"
	AtkType                              Field = "atkType"
	BarrageNum                           Field = "barrageNum"
	BarterRate                           Field = "barterRate"
	BoostsRate                           Field = "boostsRate"
	BurstAbility                         Field = "burstAbility"
	Critical                             Field = "critical"
	CriticalCoefficient                  Field = "criticalCoefficient"
	DamageCalculateParamAdjust           Field = "damageCalculateParamAdjust"
	DamageCalculateParamAdjustConf       Field = "damageCalculateParamAdjustConf"
	DamageCalculateTypeByAbility         Field = "damageCalculateTypeByAbility"
	DamageFactor                         Field = "damageFactor"
	Elements                             Field = "elements"
	Factor                               Field = "factor"
	ForceHit                             Field = "forceHit"
	HealHpFactor                         Field = "healHpFactor"
	IgnoresAttackHit                     Field = "ignoresAttackHit"
	IgnoresMirageAndMightyGuard          Field = "ignoresMirageAndMightyGuard"
	IgnoresReflection                    Field = "ignoresReflection"
	IgnoresStatusAilmentsBarrier         Field = "ignoresStatusAilmentsBarrier"
	IsSameTarget                         Field = "isSameTarget"
	MatkDamageFactor                     Field = "matkDamageFactor"
	MatkElement                          Field = "matkElement"
	MatkExponentialFactor                Field = "matkExponentialFactor"
	MinDamageFactor                      Field = "minDamageFactor"
	OptionalSelfSaID                     Field = "optionalSelfSaId"
	SaSelfOptionsDuration                Field = "saSelfOptionsDuration"
	SelfSaAnimationFlag                  Field = "selfSaAnimationFlag"
	SelfSaBundleID                       Field = "selfSaBundleId"
	SelfSaID                             Field = "selfSaId"
	SelfSaOptionsDuration                Field = "selfSaOptionsDuration"
	SetSaBundle                          Field = "setSaBundle"
	SetSaID                              Field = "setSaId"
	SituationalRecalculateDamageHookType Field = "situationalRecalculateDamageHookType"
	SpareReceptorIDs                     Field = "spareReceptorIds"
	StatusAilmentsBoostIsAbsolute        Field = "statusAilmentsBoostIsAbsolute"
	StatusAilmentsBoostValue             Field = "statusAilmentsBoostValue"
	StatusAilmentsID                     Field = "statusAilmentsId"
	StatusAilmentsOptionsDuration        Field = "statusAilmentsOptionsDuration"
	UnsetSaBundle                        Field = "unsetSaBundle"
	UnsetSaID                            Field = "unsetSaId"
	WrappedAbilityID                     Field = "wrappedAbilityId"
)

// NamedArgs holds the positional arguments of an ability after they have been
// mapped to field names.
//
// Values holds single-slot fields, including fields whose slot held zero.
// Lists holds multi-slot fields with zero entries removed. Unknown holds every
// non-zero slot that no mapping claimed, keyed by slot number.
//
// All accessors are safe on a nil receiver.
type NamedArgs struct {
	Values         map[Field]int
	Lists          map[Field][]int
	IsFlightAttack bool
	Unknown        map[int]int
}

func NewNamedArgs() *NamedArgs {
	return &NamedArgs{
		Values: map[Field]int{},
		Lists:  map[Field][]int{},
	}
}

// Get returns the value of a single-slot field and whether it was mapped.
func (a *NamedArgs) Get(f Field) (int, bool) {
	if a == nil {
		return 0, false
	}
	v, ok := a.Values[f]
	return v, ok
}

// Int returns the value of a single-slot field or zero.
func (a *NamedArgs) Int(f Field) int {
	v, _ := a.Get(f)
	return v
}

// List returns a copy of a multi-slot field.
func (a *NamedArgs) List(f Field) []int {
	if a == nil {
		return nil
	}
	return slices.Clone(a.Lists[f])
}

func (a *NamedArgs) Set(f Field, v int) {
	a.Values[f] = v
}

func (a *NamedArgs) SetList(f Field, v []int) {
	a.Lists[f] = v
}

// MarshalJSON writes a single flat object. encoding/json sorts map keys, so
// the output is stable for equal inputs.
func (a *NamedArgs) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	flat := make(map[string]any, len(a.Values)+len(a.Lists)+2)
	for k, v := range a.Values {
		flat[string(k)] = v
	}
	for k, v := range a.Lists {
		if v == nil {
			v = []int{}
		}
		flat[string(k)] = v
	}
	if a.IsFlightAttack {
		flat["isFlightAttack"] = true
	}
	if len(a.Unknown) != 0 {
		flat["unknown"] = a.Unknown
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat object written by MarshalJSON.
func (a *NamedArgs) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	*a = *NewNamedArgs()
	for key, raw := range flat {
		switch key {
		case "isFlightAttack":
			if err := json.Unmarshal(raw, &a.IsFlightAttack); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			continue
		case "unknown":
			if err := json.Unmarshal(raw, &a.Unknown); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			continue
		}
		if len(raw) != 0 && raw[0] == '[' {
			var list []int
			if err := json.Unmarshal(raw, &list); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			a.Lists[Field(key)] = list
			continue
		}
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		a.Values[Field(key)] = v
	}
	return nil
}
