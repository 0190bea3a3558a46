// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

// BattleInitData is the reply to the game's get_battle_init_data call,
// trimmed to the parts that carry abilities.
type BattleInitData struct {
	Battle Battle `json:"battle"`
}

type Battle struct {
	Buddy     []Character `json:"buddy"`
	Supporter []Character `json:"supporter"`
	MainBeast []Beast     `json:"main_beast"`
	SubBeast  []Beast     `json:"sub_beast"`
}

// Character is a party member (buddy) or a roaming warrior (supporter).
type Character struct {
	ID          IntString         `json:"id"`
	Params      []CharacterParams `json:"params"`
	Abilities   []AbilityData     `json:"abilities"`
	SoulStrikes []AbilityData     `json:"soul_strikes"`
}

type CharacterParams struct {
	DispName string `json:"disp_name"`
}

// DisplayName returns the name from the first params block.
func (c Character) DisplayName() string {
	if len(c.Params) == 0 {
		return ""
	}
	return c.Params[0].DispName
}

// Beast is a magicite.
type Beast struct {
	ID           IntString     `json:"id"`
	ActiveSkills []AbilityData `json:"active_skills"`
}

// ConvertedCharacter is the converted form of a Character.
type ConvertedCharacter struct {
	Name       string     `json:"name"`
	NameGl     *string    `json:"nameGl,omitempty"`
	Abilities  []*Ability `json:"abilities"`
	SoulBreaks []*Ability `json:"soulBreaks"`
}

// ConvertedMagicite is the converted form of a Beast.
type ConvertedMagicite struct {
	NameGl *string    `json:"nameGl"`
	Skills []*Ability `json:"skills"`
}

// ConvertedCapture is the converted form of one capture file.
type ConvertedCapture struct {
	Buddy     []*ConvertedCharacter `json:"buddy"`
	Supporter []*ConvertedCharacter `json:"supporter"`
	Magicite  []*ConvertedMagicite  `json:"magicite"`
}
