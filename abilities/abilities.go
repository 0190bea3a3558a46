// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package abilities converts abilities captured from the game into
// human-readable records.
package abilities

import (
	"fmt"
	"strings"

	"github.com/mdhender/ffrkconv/describe"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
	"github.com/mdhender/ffrkconv/namedargs"
)

// AbilityError wraps an error that prevented an ability from being
// converted.
type AbilityError struct {
	AbilityID int
	Err       error
}

func (e *AbilityError) Error() string {
	return fmt.Sprintf("ability %d: %v", e.AbilityID, e.Err)
}

func (e *AbilityError) Unwrap() error {
	return e.Err
}

// NameLookup returns the global name for an ability id.
type NameLookup func(abilityID int) (string, bool)

type Option func(*converter)

// WithNames sets the global name of each converted ability when the lookup
// knows it.
func WithNames(lookup NameLookup) Option {
	return func(c *converter) {
		c.names = lookup
	}
}

type converter struct {
	names NameLookup
}

// Convert converts a single ability. It returns nil and no error for
// abilities that should not be converted: the generic "Attack" command and
// April Fools abilities. Slot errors are returned as *AbilityError.
//
// Missing data never fails the conversion; the matching field is left nil
// and a warning may be logged.
func Convert(r *gamedata.Region, data model.AbilityData, opts ...Option) (*model.Ability, error) {
	var c converter
	for _, opt := range opts {
		opt(&c)
	}

	abilityID := data.AbilityID.Int()
	if abilityID == r.AttackID() || r.IsAprilFool(abilityID) {
		return nil, nil
	}
	actionID := data.ActionID.Int()
	options := data.Options

	ability := &model.Ability{ID: abilityID}

	name, _ := options.Value("name")
	ability.Name = strings.TrimSpace(name)
	if alias, _ := options.Value("alias_name"); strings.TrimSpace(alias) != "" && strings.TrimSpace(alias) != ability.Name {
		ability.Alias = ptr(strings.TrimSpace(alias))
	}
	if c.names != nil {
		if nameGl, ok := c.names(abilityID); ok {
			ability.NameGl = ptr(nameGl)
		}
	}

	if school, ok := r.School(data.CategoryID.Int()); ok {
		ability.School = ptr(school)
	}
	if damageType, ok := r.DamageType(data.ExerciseType.Int()); ok {
		ability.Type = ptr(damageType)
	}

	action, schema := namedargs.Lookup(r, actionID)
	if action != nil {
		ability.ActionClass = ptr(action.ClassName)
	}
	if schema != nil && schema.Formula != "" {
		ability.Formula = ptr(string(schema.Formula))
	}

	args, err := namedargs.Resolve(r, actionID, abilityID, options)
	if err != nil {
		return nil, &AbilityError{AbilityID: abilityID, Err: err}
	}
	ability.Args = args

	targetRange := options.Int("target_range")
	targetSegment := options.Int("target_segment")
	activeTargetMethod := options.Int("active_target_method")
	if target, ok := r.DescribeTarget(targetRange, targetSegment, activeTargetMethod); ok {
		ability.Target = ptr(target)
	}
	if autoTarget, ok := r.DescribeTargetMethod(targetRange, targetSegment, activeTargetMethod, options.Int("target_method")); ok {
		ability.AutoTarget = ptr(autoTarget)
	}

	ability.Multiplier = multiplier(args)
	ability.Element = element(r, args)
	ability.Effects = describe.Format(r, actionID, options, args, data.SoulBreak)

	ability.Time = float64(options.Int("cast_time")) / 1000
	if _, ok := options.Value("counter_enable"); ok {
		ability.Counter = ptr(options.NonZero("counter_enable"))
	}
	if sb, ok := options.IntOK("ss_point"); ok {
		ability.SB = ptr(sb)
	}

	return ability, nil
}

// ConvertAll converts every ability independently. Abilities that are
// rejected are skipped; errors are collected and never stop the batch.
func ConvertAll(r *gamedata.Region, data []model.AbilityData, opts ...Option) ([]*model.Ability, []error) {
	var list []*model.Ability
	var errs []error
	for _, d := range data {
		ability, err := Convert(r, d, opts...)
		if err != nil {
			errs = append(errs, err)
			continue
		} else if ability == nil {
			continue
		}
		list = append(list, ability)
	}
	return list, errs
}

// multiplier is the total damage multiplier over all hits.
func multiplier(args *model.NamedArgs) *float64 {
	factor := args.Int(model.DamageFactor)
	if factor == 0 {
		return nil
	}
	hits := args.Int(model.BarrageNum)
	if hits < 1 {
		hits = 1
	}
	return ptr(float64(hits*factor) / 100)
}

func element(r *gamedata.Region, args *model.NamedArgs) *string {
	if elements, ok := r.Elements(args.List(model.Elements)); ok {
		return ptr(elements)
	}
	for _, field := range []model.Field{model.AtkElement, model.MatkElement} {
		if label, ok := r.Elements([]int{args.Int(field)}); ok {
			return ptr(label)
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
