// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package enlir loads the community reference dataset, an export of the
// player-maintained spreadsheet. It is only used to cross-reference names.
package enlir

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	AbilitiesFile  = "abilities.json"
	CharactersFile = "characters.json"
	MagiciteFile   = "magicite.json"
	SoulBreaksFile = "soulBreaks.json"
)

type Ability struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	School string `json:"school"`
	NameJp string `json:"nameJp"`
	GL     bool   `json:"gl"`
}

type Character struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Realm string `json:"realm"`
}

type Magicite struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Realm   string `json:"realm"`
	Element string `json:"element"`
	NameJp  string `json:"nameJp"`
	GL      bool   `json:"gl"`
}

type SoulBreak struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Tier      string `json:"tier"`
	NameJp    string `json:"nameJp"`
	GL        bool   `json:"gl"`
}

// All holds every table of the dataset keyed by id. A table that failed to
// load is nil and every lookup in it fails.
type All struct {
	Abilities  map[int]*Ability
	Characters map[int]*Character
	Magicite   map[int]*Magicite
	SoulBreaks map[int]*SoulBreak
}

// TryLoadAll loads every table from dir. Failures are logged and leave the
// table nil, so the result is never nil.
func TryLoadAll(fs afero.Fs, dir string) *All {
	all := &All{}
	var err error
	if all.Abilities, err = loadTable(fs, filepath.Join(dir, AbilitiesFile), func(a *Ability) int { return a.ID }); err != nil {
		log.Printf("warning: enlir: %v: some features will be unavailable\n", err)
	}
	if all.Characters, err = loadTable(fs, filepath.Join(dir, CharactersFile), func(c *Character) int { return c.ID }); err != nil {
		log.Printf("warning: enlir: %v: some features will be unavailable\n", err)
	}
	if all.Magicite, err = loadTable(fs, filepath.Join(dir, MagiciteFile), func(m *Magicite) int { return m.ID }); err != nil {
		log.Printf("warning: enlir: %v: some features will be unavailable\n", err)
	}
	if all.SoulBreaks, err = loadTable(fs, filepath.Join(dir, SoulBreaksFile), func(sb *SoulBreak) int { return sb.ID }); err != nil {
		log.Printf("warning: enlir: %v: some features will be unavailable\n", err)
	}
	return all
}

func loadTable[T any](fs afero.Fs, path string, id func(*T) int) (map[int]*T, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var rows []*T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	table := make(map[int]*T, len(rows))
	for _, row := range rows {
		if row != nil {
			table[id(row)] = row
		}
	}
	return table, nil
}

func (a *All) Ability(id int) (*Ability, bool) {
	if a == nil {
		return nil, false
	}
	row, ok := a.Abilities[id]
	return row, ok
}

func (a *All) Character(id int) (*Character, bool) {
	if a == nil {
		return nil, false
	}
	row, ok := a.Characters[id]
	return row, ok
}

func (a *All) MagiciteByID(id int) (*Magicite, bool) {
	if a == nil {
		return nil, false
	}
	row, ok := a.Magicite[id]
	return row, ok
}

func (a *All) SoulBreak(id int) (*SoulBreak, bool) {
	if a == nil {
		return nil, false
	}
	row, ok := a.SoulBreaks[id]
	return row, ok
}

// AbilityName returns the global name of an ability or soul break.
func (a *All) AbilityName(id int) (string, bool) {
	if row, ok := a.Ability(id); ok {
		return row.Name, true
	} else if row, ok := a.SoulBreak(id); ok {
		return row.Name, true
	}
	return "", false
}
