// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package gamedata holds the per-region tables extracted from the game
// client: enumerated constants, the action map, extracted argument schemas,
// and the status ailment catalog.
//
// A Region is built once by Load or Parse and never modified afterward, so
// it may be shared freely between goroutines.
package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/spf13/afero"
)

// Names of the enumerated constant tables.
const (
	AbilityCategoryID    = "ABILITY_CATEGORY_ID"
	AbilityIDOf          = "ABILITY_ID_OF"
	ActiveTargetMethod   = "ACTIVE_TARGET_METHOD"
	AtkType              = "ATK_TYPE"
	ElementType          = "ELEMENT_TYPE"
	StatusAilmentsBundle = "STATUS_AILMENTS_BUNDLE"
	TargetMethod         = "TARGET_METHOD"
	TargetRange          = "TARGET_RANGE"
	TargetSegment        = "TARGET_SEGMENT"
)

// Region is the immutable game data for one region.
type Region struct {
	name string

	// codes maps table -> internal name -> code.
	codes map[string]map[string]int
	// names maps table -> code -> internal name.
	names map[string]map[int]string

	actions          map[int]*Action
	battleArgs       map[string]*ActionArgs
	statusAilments   map[int]*StatusAilment
	bundles          map[int]*Bundle
	flightExceptions map[int]bool
	aprilFoolIDs     map[int]bool
	aprilFoolRanges  [][2]int
}

// Action is one entry of the game's action map.
type Action struct {
	ActionID                        int      `json:"actionId"`
	ClassName                       string   `json:"className"`
	Elements                        *ArgList `json:"elements,omitempty"`
	IsAttack                        bool     `json:"isAttack,omitempty"`
	IsHeal                          bool     `json:"isHeal,omitempty"`
	IsHealHp                        bool     `json:"isHealHp,omitempty"`
	IsTrance                        bool     `json:"isTrance,omitempty"`
	IsFlightAttack                  bool     `json:"isFlightAttack,omitempty"`
	IgnoresReflectionArg            int      `json:"ignoresReflectionArg,omitempty"`
	IgnoresMirageAndMightyGuardArg  int      `json:"ignoresMirageAndMightyGuardArg,omitempty"`
	IgnoresStatusAilmentsBarrierArg int      `json:"ignoresStatusAilmentsBarrierArg,omitempty"`
	BurstAbilityArgs                SlotList `json:"burstAbilityArgs,omitempty"`
	SetSa                           *SaArgs  `json:"setSa,omitempty"`
	UnsetSa                         *SaArgs  `json:"unsetSa,omitempty"`
}

type ArgList struct {
	Args SlotList `json:"args"`
}

// SaArgs lists the slots that carry status ailment ids and bundle ids.
type SaArgs struct {
	UseStatusAilmentsID     bool     `json:"useStatusAilmentsId,omitempty"`
	AutoConvertSaIDToBundle bool     `json:"autoConvertSaIdToBundle,omitempty"`
	Args                    SlotList `json:"args,omitempty"`
	BundleArgs              SlotList `json:"bundleArgs,omitempty"`
}

// SlotList is a list of 1-based slot numbers. The game writes most lists as
// integers but some as "argN" strings; anything else becomes slot 0, which
// callers ignore.
type SlotList []int

var reArgN = regexp.MustCompile(`^arg(\d+)$`)

func (l *SlotList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SlotList, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) != 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return err
			}
			slot := 0
			if m := reArgN.FindStringSubmatch(s); m != nil {
				slot, _ = strconv.Atoi(m[1])
			}
			out = append(out, slot)
			continue
		}
		var n int
		if err := json.Unmarshal(item, &n); err != nil {
			return fmt.Errorf("slot %s: %w", string(item), err)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

// ActionArgs is the argument schema extracted from the client for a class.
type ActionArgs struct {
	Args      map[string]int   `json:"args"`
	MultiArgs map[string][]int `json:"multiArgs"`
}

// StatusAilment is one entry of the status ailment catalog.
type StatusAilment struct {
	ID            int       `json:"-"`
	Name          string    `json:"_name"`
	Duration      *Duration `json:"duration,omitempty"`
	Boosts        []Boost   `json:"boosts,omitempty"`
	FuncMap       FuncMap   `json:"funcMap"`

	// IncreaseLevel is read from the top level or, when that is missing or
	// zero, from params.increaseLevel.
	IncreaseLevel int                        `json:"increaseLevel,omitempty"`
	Params        map[string]json.RawMessage `json:"params,omitempty"`
}

// Duration is in milliseconds.
type Duration struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
}

type Boost struct {
	ParamName string `json:"paramName"`
	Rate      int    `json:"rate"`
}

// FuncMap names the client handler functions wired to a status ailment.
type FuncMap struct {
	Entry           HookNames `json:"entry,omitempty"`
	Set             HookNames `json:"set,omitempty"`
	Update          HookNames `json:"update,omitempty"`
	Exit            HookNames `json:"exit,omitempty"`
	AbilityDoneHook HookNames `json:"abilityDoneHook,omitempty"`
}

// HookNames accepts either a single name or a list of names.
type HookNames []string

func (h *HookNames) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) != 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*h = HookNames{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*h = list
	return nil
}

// Bundle is a named group of status ailments.
type Bundle struct {
	ID   int    `json:"-"`
	Name string `json:"_name"`
	IDs  []int  `json:"ids"`
}

type jsonRegion struct {
	Region       string                    `json:"region"`
	Conf         map[string]map[string]int `json:"conf"`
	BattleConfig struct {
		ExceptionalFlightAttackIds []int `json:"ExceptionalFlightAttackIds"`
	} `json:"battleConfig"`
	AprilFool struct {
		IDs    []int    `json:"ids"`
		Ranges [][2]int `json:"ranges"`
	} `json:"aprilFool"`
	ActionMap            []*Action                 `json:"actionMap"`
	BattleArgs           map[string]*ActionArgs    `json:"battleArgs"`
	StatusAilments       map[string]*StatusAilment `json:"statusAilments"`
	StatusAilmentBundles map[string]*Bundle        `json:"statusAilmentBundles"`
}

// Load reads and parses the region file at path.
func Load(fs afero.Fs, path string) (*Region, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read region: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// LoadDir loads "<name>.json" from dir for every name.
func LoadDir(fs afero.Fs, dir string, names ...string) (map[string]*Region, error) {
	regions := make(map[string]*Region, len(names))
	for _, name := range names {
		r, err := Load(fs, filepath.Join(dir, name+".json"))
		if err != nil {
			return nil, err
		}
		regions[name] = r
	}
	return regions, nil
}

// Parse builds a Region from the extracted JSON.
func Parse(data []byte) (*Region, error) {
	var jr jsonRegion
	if err := json.Unmarshal(data, &jr); err != nil {
		return nil, fmt.Errorf("parse region: %w", err)
	}
	if jr.Region == "" {
		return nil, fmt.Errorf("parse region: missing region name")
	}
	if _, ok := jr.Conf[AbilityIDOf]["ATTACK"]; !ok {
		return nil, fmt.Errorf("parse region: missing %s.ATTACK", AbilityIDOf)
	}
	for _, table := range []string{TargetRange, TargetSegment, AtkType} {
		if len(jr.Conf[table]) == 0 {
			return nil, fmt.Errorf("parse region: missing %s", table)
		}
	}

	r := &Region{
		name:             jr.Region,
		codes:            map[string]map[string]int{},
		names:            map[string]map[int]string{},
		actions:          map[int]*Action{},
		battleArgs:       map[string]*ActionArgs{},
		statusAilments:   map[int]*StatusAilment{},
		bundles:          map[int]*Bundle{},
		flightExceptions: map[int]bool{},
		aprilFoolIDs:     map[int]bool{},
		aprilFoolRanges:  jr.AprilFool.Ranges,
	}
	for table, entries := range jr.Conf {
		r.codes[table] = map[string]int{}
		r.names[table] = map[int]string{}
		// names sharing a code resolve to the first in sorted order
		for _, name := range slices.Sorted(maps.Keys(entries)) {
			code := entries[name]
			r.codes[table][name] = code
			if _, ok := r.names[table][code]; !ok {
				r.names[table][code] = name
			}
		}
	}
	for _, action := range jr.ActionMap {
		if action == nil {
			continue
		}
		r.actions[action.ActionID] = action
	}
	for className, args := range jr.BattleArgs {
		if args != nil {
			r.battleArgs[className] = args
		}
	}
	for key, sa := range jr.StatusAilments {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("parse region: status ailment id %q: %w", key, err)
		} else if sa == nil {
			continue
		}
		sa.ID = id
		if raw, ok := sa.Params["increaseLevel"]; ok && sa.IncreaseLevel == 0 {
			if err := json.Unmarshal(raw, &sa.IncreaseLevel); err != nil {
				return nil, fmt.Errorf("parse region: status ailment %d: params.increaseLevel: %w", id, err)
			}
		}
		r.statusAilments[id] = sa
	}
	for key, bundle := range jr.StatusAilmentBundles {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("parse region: bundle id %q: %w", key, err)
		} else if bundle == nil {
			continue
		}
		bundle.ID = id
		r.bundles[id] = bundle
	}
	for _, id := range jr.BattleConfig.ExceptionalFlightAttackIds {
		r.flightExceptions[id] = true
	}
	for _, id := range jr.AprilFool.IDs {
		r.aprilFoolIDs[id] = true
	}

	return r, nil
}

// Name returns the region name ("gl", "jp").
func (r *Region) Name() string {
	return r.name
}
