// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package gamedata

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type rangeSegment struct {
	rng, segment string
}

// targets is keyed by TARGET_RANGE and TARGET_SEGMENT internal names.
var targets = map[rangeSegment]string{
	{"SINGLE", "OPPONENT"}:  "Single enemy",
	{"SINGLE", "COLLEAGUE"}: "Single ally",
	{"SINGLE", "BOTH"}:      "Single",
	{"ALL", "OPPONENT"}:     "All enemies",
	{"ALL", "COLLEAGUE"}:    "All allies",
	{"ALL", "BOTH"}:         "All",
	{"RANDOM", "OPPONENT"}:  "Random enemies",
	{"RANDOM", "COLLEAGUE"}: "Random ally",
}

// targetMethods is keyed by TARGET_METHOD internal name. Every %s is replaced
// by the target noun and the first letter is capitalized.
var targetMethods = map[string]string{
	"RANDOM":                 "Random %s",
	"LOWEST_HP_RATE":         "Lowest HP% %s",
	"HIGHEST_HP_RATE":        "Highest HP% %s",
	"LOWEST_HP":              "Lowest HP %s",
	"HIGHEST_HP":             "Highest HP %s",
	"DEAD":                   "%s with KO",
	"DEAD_OR_LOWEST_HP_RATE": "%s with KO or lowest HP% %s",
}

// DescribeTarget describes who an ability can target. The rules were worked
// out from captures and are not reliable for combinations never seen; unknown
// combinations return false.
func (r *Region) DescribeTarget(targetRange, targetSegment, activeTargetMethod int) (string, bool) {
	rng := r.names[TargetRange][targetRange]
	segment := r.names[TargetSegment][targetSegment]
	active := r.names[ActiveTargetMethod][activeTargetMethod]

	switch {
	case rng == "SELF":
		return "Self", true
	case rng == "SINGLE" && segment == "OPPONENT" && active == "BOTH_DISABLE":
		return "Random enemies", true
	case rng == "SINGLE" && active == "BOTH_ENABLE":
		// cure spells that can also target enemies
		return "Single", true
	}
	desc, ok := targets[rangeSegment{rng, segment}]
	return desc, ok
}

// DescribeTargetMethod describes how the game picks a target when the ability
// is auto-targeted. Methods without a template fall back to DescribeTarget.
func (r *Region) DescribeTargetMethod(targetRange, targetSegment, activeTargetMethod, targetMethod int) (string, bool) {
	template, ok := targetMethods[r.names[TargetMethod][targetMethod]]
	if !ok {
		return r.DescribeTarget(targetRange, targetSegment, activeTargetMethod)
	}
	noun := r.targetNoun(targetRange, targetSegment, activeTargetMethod)
	return upperFirst(strings.ReplaceAll(template, "%s", noun)), true
}

func (r *Region) targetNoun(targetRange, targetSegment, activeTargetMethod int) string {
	plural := r.names[TargetRange][targetRange] == "ALL"
	segment := r.names[TargetSegment][targetSegment]
	if segment == "BOTH" {
		switch r.names[ActiveTargetMethod][activeTargetMethod] {
		case "COLLEAGUE_ENABLE":
			segment = "COLLEAGUE"
		case "OPPONENT_ENABLE":
			segment = "OPPONENT"
		}
	}
	switch {
	case segment == "COLLEAGUE" && plural:
		return "allies"
	case segment == "COLLEAGUE":
		return "ally"
	case segment == "OPPONENT" && plural:
		return "enemies"
	case segment == "OPPONENT":
		return "enemy"
	case plural:
		return "targets"
	}
	return "target"
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
