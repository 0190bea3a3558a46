// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package describe renders resolved ability arguments as English effect
// descriptions, one formatter per action class.
package describe

import (
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
)

// Context is everything a formatter may read.
type Context struct {
	Region  *gamedata.Region
	Options model.Options
	Args    *model.NamedArgs

	// SoulBreak overrides the counter_enable heuristic when set.
	SoulBreak *bool
}

// IsSoulBreak reports whether the ability is part of a soul break. Some
// details ("damages undeads", "100% hit rate") are omitted for soul breaks.
// Without an explicit flag, an ability that cannot be countered is assumed
// to be a soul break.
func (c *Context) IsSoulBreak() bool {
	if c.SoulBreak != nil {
		return *c.SoulBreak
	}
	return !c.Options.NonZero("counter_enable")
}

// Formatter renders the effects of one action class. It returns an empty
// string when there is nothing to describe.
type Formatter func(c *Context) string

var formatters = map[string]Formatter{}

// Register registers the formatter for an action class. It must only be
// called from init functions.
func Register(className string, f Formatter) {
	formatters[className] = f
}

// Registered reports whether the class has a formatter.
func Registered(className string) bool {
	_, ok := formatters[className]
	return ok
}

// Format describes the effects of an ability. It returns nil when args is
// nil, the action id is unknown, the class has no formatter, or the
// formatter has nothing to say.
func Format(r *gamedata.Region, actionID int, opts model.Options, args *model.NamedArgs, soulBreak *bool) *string {
	if args == nil {
		return nil
	}
	action, ok := r.Action(actionID)
	if !ok {
		return nil
	}
	f, ok := formatters[action.ClassName]
	if !ok {
		return nil
	}
	desc := f(&Context{Region: r, Options: opts, Args: args, SoulBreak: soulBreak})
	if desc == "" {
		return nil
	}
	return &desc
}
