// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package abilities

import (
	"github.com/mdhender/ffrkconv/describe"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/namedargs"
)

// ClassSupport reports what the converter knows about an action class.
type ClassSupport struct {
	ClassName string
	Schema    bool // curated or extracted
	Formatter bool
}

// Unsupported returns the action classes of the region that are missing a
// schema or a formatter, sorted by class name. Abilities of these classes
// convert without args or without effects.
func Unsupported(r *gamedata.Region) []ClassSupport {
	var list []ClassSupport
	for _, className := range r.ClassNames() {
		cs := ClassSupport{ClassName: className, Formatter: describe.Registered(className)}
		if namedargs.Curated(className) {
			cs.Schema = true
		} else if _, ok := r.ActionArgs(className); ok {
			cs.Schema = true
		}
		if !cs.Schema || !cs.Formatter {
			list = append(list, cs)
		}
	}
	return list
}
