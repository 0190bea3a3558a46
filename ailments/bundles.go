// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ailments

import (
	"slices"

	"github.com/mdhender/ffrkconv/gamedata"
)

// Bundle is a described status ailment bundle.
type Bundle struct {
	ID          int
	Description string
	IDs         []int
}

var bundleAliases = map[string]string{
	"ESNA":   "negative effects",
	"DISPEL": "positive effects",
}

// ResolveBundle describes a bundle. It returns nil if the id is unknown.
func ResolveBundle(r *gamedata.Region, id int) *Bundle {
	bundle, ok := r.Bundle(id)
	if !ok {
		return nil
	}
	desc, ok := bundleAliases[bundle.Name]
	if !ok {
		desc = bundle.Name
	}
	return &Bundle{ID: id, Description: desc, IDs: slices.Clone(bundle.IDs)}
}
