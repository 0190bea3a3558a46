// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import "time"

// CaptureFile is a capture file that has been converted and archived.
type CaptureFile struct {
	ID        int64     `json:"id"        db:"id"`
	Path      string    `json:"path"      db:"path"`
	Region    string    `json:"region"    db:"region"`
	SHA256    string    `json:"sha256"    db:"sha256"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Slot kinds for archived abilities.
const (
	SlotAbility   = "ability"
	SlotSoulBreak = "soulBreak"
	SlotSkill     = "skill"
)

// AbilityRow is one converted ability as archived, with where it was found.
type AbilityRow struct {
	ID        int64    `json:"id"        db:"id"`
	CaptureID int64    `json:"captureId" db:"capture_id"`
	Owner     string   `json:"owner"     db:"owner"` // character or magicite name
	Slot      string   `json:"slot"      db:"slot"`  // ability|soulBreak|skill
	Ability   *Ability `json:"ability"   db:"-"`     // stored as record_json
}
