// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package gamedata

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// damageTypes maps EXERCISE_TYPE codes to labels. The client does not ship
// this table; it was read from battle.js.
var damageTypes = map[int]string{
	1: "PHY",
	3: "WHT",
	4: "BLK",
	5: "BLU",
	6: "SUM",
	7: "NAT", // aka "Inborn"
	8: "NIN",
	9: "NONE",
}

// elementLabels overrides the title-cased internal name.
var elementLabels = map[string]string{
	"THUNDER": "Lightning",
	"NONE":    "Non-Elemental",
}

// TitleCase turns an internal SNAKE_CASE name into space separated words
// with each word capitalized: "NO_AIR_TIME_2" becomes "No Air Time 2".
func TitleCase(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	// a Caser is stateful and must not be shared between goroutines
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}

// Code returns the code for an internal name in a constant table.
func (r *Region) Code(table, name string) (int, bool) {
	code, ok := r.codes[table][name]
	return code, ok
}

// CodeName returns the internal name for a code in a constant table.
func (r *Region) CodeName(table string, code int) (string, bool) {
	name, ok := r.names[table][code]
	return name, ok
}

// AttackID returns the ability id of the generic "Attack" command.
func (r *Region) AttackID() int {
	return r.codes[AbilityIDOf]["ATTACK"]
}

// IsAprilFool reports whether the ability id belongs to an April Fools event.
func (r *Region) IsAprilFool(abilityID int) bool {
	if r.aprilFoolIDs[abilityID] {
		return true
	}
	for _, rng := range r.aprilFoolRanges {
		if rng[0] <= abilityID && abilityID <= rng[1] {
			return true
		}
	}
	return false
}

// School returns the label for an ability category ("White Magic").
func (r *Region) School(categoryID int) (string, bool) {
	name, ok := r.names[AbilityCategoryID][categoryID]
	if !ok {
		return "", false
	}
	return TitleCase(name), true
}

// DamageType returns the label for an exercise type ("PHY").
func (r *Region) DamageType(exerciseType int) (string, bool) {
	label, ok := damageTypes[exerciseType]
	return label, ok
}

// Element returns the display label for an element code.
func (r *Region) Element(code int) (string, bool) {
	name, ok := r.names[ElementType][code]
	if !ok {
		return "", false
	}
	if label, ok := elementLabels[name]; ok {
		return label, true
	}
	return TitleCase(name), true
}

// Elements joins the labels of the known, non-zero codes with ", ".
func (r *Region) Elements(codes []int) (string, bool) {
	var labels []string
	for _, code := range codes {
		if code == 0 {
			continue
		} else if label, ok := r.Element(code); ok {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, ", "), true
}

// Action returns the action map entry for an action id. The entry is shared
// and must not be modified.
func (r *Region) Action(actionID int) (*Action, bool) {
	action, ok := r.actions[actionID]
	return action, ok
}

// ActionArgs returns the extracted argument schema for an action class.
func (r *Region) ActionArgs(className string) (*ActionArgs, bool) {
	args, ok := r.battleArgs[className]
	return args, ok
}

// ClassNames returns the sorted, distinct class names in the action map.
func (r *Region) ClassNames() []string {
	var names []string
	for _, action := range r.actions {
		names = append(names, action.ClassName)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// StatusAilment returns a catalog entry. The entry is shared and must not be
// modified.
func (r *Region) StatusAilment(id int) (*StatusAilment, bool) {
	sa, ok := r.statusAilments[id]
	return sa, ok
}

// Bundle returns a status ailment bundle.
func (r *Region) Bundle(id int) (*Bundle, bool) {
	bundle, ok := r.bundles[id]
	return bundle, ok
}

// InBundle reports whether the status ailment is a member of the bundle
// registered under name in STATUS_AILMENTS_BUNDLE.
func (r *Region) InBundle(name string, statusAilmentID int) bool {
	code, ok := r.codes[StatusAilmentsBundle][name]
	if !ok {
		return false
	}
	bundle, ok := r.bundles[code]
	if !ok {
		return false
	}
	return slices.Contains(bundle.IDs, statusAilmentID)
}

// IsFlightAttackException reports whether the ability is a jump attack even
// though its action does not say so.
func (r *Region) IsFlightAttackException(abilityID int) bool {
	return r.flightExceptions[abilityID]
}
