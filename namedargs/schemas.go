// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package namedargs

import (
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
)

// Formula is the damage formula an action class uses.
type Formula string

const (
	Physical Formula = "Physical"
	Magical  Formula = "Magical"
	Hybrid   Formula = "Hybrid"
)

// Schema maps the positional slots of an action class to field names.
type Schema struct {
	Formula   Formula
	Args      map[model.Field]int
	MultiArgs map[model.Field][]int

	// Extracted is true when the schema came from the region's extracted
	// argument table instead of the curated table below.
	Extracted bool
}

// schemas is the curated table, keyed by action class name. It takes
// precedence over the extracted argument tables.
var schemas = map[string]*Schema{
	"HealHpAction": {
		Formula: Magical,
		Args: map[model.Field]int{
			model.Factor:       1,
			model.MatkElement:  2,
			model.DamageFactor: 3,
		},
	},
	"HealHpAndCustomParamAction": {
		Formula: Magical,
		Args: map[model.Field]int{
			model.Factor:                        1,
			model.MatkElement:                   2,
			model.DamageFactor:                  3,
			model.StatusAilmentsBoostValue:      4,
			model.StatusAilmentsOptionsDuration: 5,
			model.StatusAilmentsBoostIsAbsolute: 6,
		},
	},
	"HealHpAndHealSaAction": {
		Formula: Magical,
		Args: map[model.Field]int{
			model.Factor:       1,
			model.MatkElement:  2,
			model.DamageFactor: 3,
		},
	},
	// simple single-hit magic attacks, like a magicite's auto-attack
	"MagicAttackAction": {
		Formula: Magical,
		Args: map[model.Field]int{
			model.DamageFactor:    1,
			model.MatkElement:     2,
			model.MinDamageFactor: 3,
		},
	},
	"MagicAttackMultiAction": {
		Formula: Magical,
		Args: map[model.Field]int{
			model.DamageFactor:                         1,
			model.MatkElement:                          2,
			model.MinDamageFactor:                      3,
			model.BarrageNum:                           4,
			model.IsSameTarget:                         5,
			model.SituationalRecalculateDamageHookType: 7,
			model.DamageCalculateParamAdjust:           8,
			model.DamageCalculateTypeByAbility:         13,
			model.MatkExponentialFactor:                14,
		},
		MultiArgs: map[model.Field][]int{
			model.DamageCalculateParamAdjustConf: {9, 10, 11, 12},
		},
	},
	"MagicAttackMultiWithMultiElementAction": {
		Formula: Magical,
		Args: map[model.Field]int{
			model.DamageFactor:                 1,
			model.MinDamageFactor:              2,
			model.BarrageNum:                   3,
			model.IsSameTarget:                 4,
			model.DamageCalculateTypeByAbility: 10,
			model.MatkExponentialFactor:        11,
			model.DamageCalculateParamAdjust:   12,
		},
		MultiArgs: map[model.Field][]int{
			model.DamageCalculateParamAdjustConf: {13, 14, 15, 16, 17, 18},
		},
	},
	// simple single-hit physical attacks, like the Attack replacement of an
	// en-element status
	"PhysicalAttackElementAction": {
		Formula: Physical,
		Args: map[model.Field]int{
			model.DamageFactor: 1,
			model.AtkElement:   2,
			model.AtkType:      3,
			model.ForceHit:     4,
		},
	},
	"PhysicalAttackMultiAction": {
		Formula: Physical,
		Args: map[model.Field]int{
			model.DamageFactor:                         1,
			model.BarrageNum:                           2,
			model.AtkType:                              3,
			model.ForceHit:                             4,
			model.AtkElement:                           5,
			model.IsSameTarget:                         6,
			model.Critical:                             7,
			model.DamageCalculateParamAdjust:           8,
			model.SituationalRecalculateDamageHookType: 9,
			model.DamageCalculateTypeByAbility:         14,
			model.AtkExponentialFactor:                 16,
		},
		MultiArgs: map[model.Field][]int{
			model.DamageCalculateParamAdjustConf: {10, 11, 12, 13, 15},
		},
	},
	"PhysicalAttackMultiAndHealHpByHitDamageAction": {
		Formula: Physical,
		Args: map[model.Field]int{
			model.DamageFactor: 1,
			model.BarrageNum:   2,
			model.AtkType:      3,
			model.ForceHit:     4,
			model.IsSameTarget: 6,
			model.HealHpFactor: 7,
		},
	},
	"PhysicalAttackMultiAndHpBarterAndSelfSaAction": {
		Formula: Physical,
		Args: map[model.Field]int{
			model.DamageFactor:          1,
			model.BarterRate:            2,
			model.AtkType:               4,
			model.ForceHit:              5,
			model.BarrageNum:            6,
			model.IsSameTarget:          7,
			model.SelfSaBundleID:        9,
			model.SelfSaOptionsDuration: 10,
			model.IgnoresAttackHit:      11,
			model.SelfSaAnimationFlag:   12,
		},
	},
	"PhysicalAttackMultiAndSelfSaAction": {
		Formula: Physical,
		Args: map[model.Field]int{
			model.DamageFactor:               1,
			model.BarrageNum:                 2,
			model.AtkType:                    3,
			model.ForceHit:                   4,
			model.IsSameTarget:               6,
			model.SelfSaID:                   7,
			model.IgnoresAttackHit:           8,
			model.SelfSaOptionsDuration:      9,
			model.SelfSaAnimationFlag:        10,
			model.DamageCalculateParamAdjust: 12,
			model.Critical:                   17,
		},
		MultiArgs: map[model.Field][]int{
			model.DamageCalculateParamAdjustConf: {13, 14},
		},
	},
	"PhysicalAttackMultiWithMultiElementAction": {
		Formula: Physical,
		Args: map[model.Field]int{
			model.DamageFactor:               1,
			model.BarrageNum:                 2,
			model.AtkType:                    3,
			model.ForceHit:                   4,
			model.IsSameTarget:               5,
			model.CriticalCoefficient:        10,
			model.DamageCalculateParamAdjust: 11,
			model.Critical:                   19,
		},
		MultiArgs: map[model.Field][]int{
			model.DamageCalculateParamAdjustConf: {12, 13, 14, 15, 16, 17, 18},
		},
	},
	"HybridAttackMultiAction": {
		Formula: Hybrid,
		Args: map[model.Field]int{
			model.DamageFactor:     1,
			model.BarrageNum:       2,
			model.AtkType:          3,
			model.ForceHit:         4,
			model.AtkElement:       5,
			model.IsSameTarget:     6,
			model.MatkDamageFactor: 7,
			model.MatkElement:      8,
		},
	},
	"SelfSaAction": {
		Args: map[model.Field]int{
			model.SelfSaID:              1,
			model.SelfSaOptionsDuration: 2,
			model.SelfSaAnimationFlag:   3,
		},
	},
	// status ids come from the action map's setSa and unsetSa slots
	"SetSaAction": {},
	"HealSaAction": {},
	"TranceAction": {
		Args: map[model.Field]int{
			model.WrappedAbilityID:      1,
			model.SaSelfOptionsDuration: 6,
			model.OptionalSelfSaID:      9,
		},
		MultiArgs: map[model.Field][]int{
			model.SpareReceptorIDs: {3, 5},
			model.BoostsRate:       {7, 7, 7, 7, 7, 7, 7, 8},
		},
	},
}

// Lookup returns the action map entry for the action id and the schema for
// its class. Either may be nil. Lookup does not log.
func Lookup(r *gamedata.Region, actionID int) (*gamedata.Action, *Schema) {
	action, ok := r.Action(actionID)
	if !ok {
		return nil, nil
	}
	if schema, ok := schemas[action.ClassName]; ok {
		return action, schema
	}
	extracted, ok := r.ActionArgs(action.ClassName)
	if !ok {
		return action, nil
	}
	schema := &Schema{
		Args:      make(map[model.Field]int, len(extracted.Args)),
		MultiArgs: make(map[model.Field][]int, len(extracted.MultiArgs)),
		Extracted: true,
	}
	for name, slot := range extracted.Args {
		schema.Args[model.Field(name)] = slot
	}
	for name, slots := range extracted.MultiArgs {
		schema.MultiArgs[model.Field(name)] = slots
	}
	return action, schema
}

// Curated reports whether the class has a curated schema.
func Curated(className string) bool {
	_, ok := schemas[className]
	return ok
}
