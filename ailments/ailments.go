// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package ailments describes status ailments and status ailment bundles.
package ailments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
)

// Verb is how a status is applied.
type Verb int

const (
	None Verb = iota
	Grants
	Causes
)

func (v Verb) String() string {
	switch v {
	case Grants:
		return "GRANTS"
	case Causes:
		return "CAUSES"
	}
	return "NONE"
}

// VerbText returns the verb as it prefixes a description.
func VerbText(v Verb) string {
	switch v {
	case Grants:
		return "grants "
	case Causes:
		return "causes "
	}
	return ""
}

// Status is a described status ailment. Duration is zero when unknown.
type Status struct {
	ID          int
	Verb        Verb
	Description string
	Duration    time.Duration
}

// String returns the description followed by the duration, if any.
func (s *Status) String() string {
	return s.Description + s.DurationText()
}

// DurationText returns " for N seconds" or an empty string.
func (s *Status) DurationText() string {
	if s.Duration <= 0 {
		return ""
	}
	secs := strconv.FormatFloat(s.Duration.Seconds(), 'f', -1, 64)
	if secs == "1" {
		return " for 1 second"
	}
	return " for " + secs + " seconds"
}

type settings struct {
	duration time.Duration
}

type Option func(*settings)

// WithDuration replaces whatever duration the catalog gives. Values of zero
// or less are ignored.
func WithDuration(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.duration = d
		}
	}
}

// Resolve describes the status ailment with the given id. It returns nil if
// the id is not in the region's catalog. args may be nil.
//
// Rules are tried in order and the first match wins: stat boosts recognized
// from the ailment's structure, then client handler hooks (entry hooks before
// set hooks), then a default built from the internal name.
func Resolve(r *gamedata.Region, id int, args *model.NamedArgs, opts ...Option) *Status {
	sa, ok := r.StatusAilment(id)
	if !ok {
		return nil
	}
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	status := describeStatBuff(sa, args)
	if status == nil {
		status = describeHooks(sa)
	}
	if status == nil {
		verb := Causes
		if IsCommonBuff(r, id) {
			verb = Grants
		}
		status = &Status{Verb: verb, Description: gamedata.TitleCase(sa.Name)}
	}
	status.ID = id

	if status.Duration == 0 && sa.Duration != nil && sa.Duration.A > 0 {
		status.Duration = time.Duration(sa.Duration.A) * time.Millisecond
	}
	if cfg.duration > 0 {
		status.Duration = cfg.duration
	}
	return status
}

// IsCommonBuff reports whether Dispel removes the status.
func IsCommonBuff(r *gamedata.Region, id int) bool {
	return r.InBundle("DISPEL", id)
}

// statNames maps boost parameter names to their display names.
var statNames = map[string]string{
	"atk":  "ATK",
	"def":  "DEF",
	"matk": "MAG",
	"mdef": "RES",
	"mnd":  "MND",
	"spd":  "SPD",
	"acc":  "ACC",
	"eva":  "EVA",
	"hp":   "HP",
}

// IsStatBuff reports whether the ailment is a generic stat boost, which the
// client names CUSTOM_ followed by the boosted parameters.
func IsStatBuff(sa *gamedata.StatusAilment) bool {
	if len(sa.Boosts) == 0 {
		return false
	}
	params := make([]string, 0, len(sa.Boosts))
	for _, boost := range sa.Boosts {
		params = append(params, strings.ToUpper(boost.ParamName))
	}
	return sa.Name == "CUSTOM_"+strings.Join(params, "_")
}

func describeStatBuff(sa *gamedata.StatusAilment, args *model.NamedArgs) *Status {
	if !IsStatBuff(sa) {
		return nil
	}
	stats := make([]string, 0, len(sa.Boosts))
	for _, boost := range sa.Boosts {
		name, ok := statNames[boost.ParamName]
		if !ok {
			name = strings.ToUpper(boost.ParamName)
		}
		stats = append(stats, name)
	}
	desc := joinAnd(stats)
	if value := args.Int(model.StatusAilmentsBoostValue); value != 0 {
		if args.Int(model.StatusAilmentsBoostIsAbsolute) != 0 {
			desc += " " + withPlus(value)
		} else {
			desc += fmt.Sprintf(" %d%%", value)
		}
	}
	return &Status{Verb: None, Description: desc}
}

// joinAnd joins with commas and a final "and": "ATK, DEF and RES".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func withPlus(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}
