// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package describe

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/divan/num2words"
	"github.com/mdhender/ffrkconv/ailments"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
)

// Attack describes an attack: "Three single ranged attacks (0,70 each)".
func Attack(c *Context) string {
	return attack(c, "attack", EuroFixed(c.Args.Int(model.DamageFactor)))
}

// HybridAttack describes an attack that uses the better of two factors.
func HybridAttack(c *Context) string {
	multiplier := EuroFixed(c.Args.Int(model.DamageFactor)) + " or " + EuroFixed(c.Args.Int(model.MatkDamageFactor))
	return attack(c, "hybrid attack", multiplier)
}

func attack(c *Context, noun, multiplier string) string {
	barrage := c.Args.Int(model.BarrageNum)
	count := barrage
	if count < 1 {
		count = 1
	}

	who := "group"
	if rng, _ := c.Region.CodeName(gamedata.TargetRange, c.Options.Int("target_range")); rng == "SELF" || rng == "SINGLE" {
		who = "single"
	}
	ranged := ""
	if indirect, ok := c.Region.Code(gamedata.AtkType, "INDIRECT"); ok && c.Args.Int(model.AtkType) == indirect {
		ranged = "ranged "
	}
	jump := ""
	if c.Args.IsFlightAttack {
		jump = "jump "
	}

	var sb strings.Builder
	sb.WriteString(upperFirst(num2words.Convert(count)) + " " + who + " " + ranged + jump)
	if barrage <= 1 {
		sb.WriteString(fmt.Sprintf("%s (%s)", noun, multiplier))
	} else {
		sb.WriteString(fmt.Sprintf("%ss (%s each)", noun, multiplier))
	}

	if c.Options.NonZero("max_damage_threshold_type") {
		sb.WriteString(", capped at 99999")
	}
	if c.Args.Int(model.ForceHit) != 0 && !c.IsSoulBreak() {
		sb.WriteString(", 100% hit rate")
	}
	if critical := c.Args.Int(model.Critical); critical != 0 {
		sb.WriteString(fmt.Sprintf(", %d%% additional critical chance", critical))
	}
	if c.Options.NonZero("status_ailments_id") {
		id := c.Options.Int("status_ailments_id")
		name := fmt.Sprintf("unknown status %d", id)
		if status := ailments.Resolve(c.Region, id, c.Args); status != nil {
			name = status.Description
		} else {
			log.Printf("warning: %s: unknown status id %d\n", c.Region.Name(), id)
		}
		sb.WriteString(", causes " + name)
		if factor, ok := c.Options.IntOK("status_ailments_factor"); ok {
			sb.WriteString(fmt.Sprintf(" (%d%%)", factor))
		}
	}

	return sb.String()
}

// Heal describes HP restoration: "Restores HP (105), damages undeads".
func Heal(c *Context) string {
	desc := "Restores HP"
	if factor := c.Args.Int(model.Factor); factor != 0 {
		desc += fmt.Sprintf(" (%d)", factor)
	}
	if !c.IsSoulBreak() {
		desc += ", damages undeads"
	}
	return desc
}

// SelfStatus describes a status applied to the user: "grants Haste to the
// user". It returns an empty string when the ability names no status.
func SelfStatus(c *Context) string {
	if id := c.Args.Int(model.SelfSaBundleID); id != 0 && c.Args.Int(model.SelfSaID) == 0 {
		if b := ailments.ResolveBundle(c.Region, id); b != nil {
			return ailments.VerbText(ailments.Grants) + b.Description + " to the user"
		}
		log.Printf("warning: %s: unknown bundle id %d\n", c.Region.Name(), id)
		return "grants unknown status to the user"
	}

	var id int
	switch {
	case c.Args.Int(model.SelfSaID) != 0:
		id = c.Args.Int(model.SelfSaID)
	case c.Args.Int(model.OptionalSelfSaID) != 0:
		id = c.Args.Int(model.OptionalSelfSaID)
	default:
		return ""
	}
	if status := ailments.Resolve(c.Region, id, c.Args); status != nil {
		return ailments.VerbText(status.Verb) + status.Description + " to the user"
	}
	log.Printf("warning: %s: unknown status id %d\n", c.Region.Name(), id)
	return "grants unknown status to the user"
}

// Statuses describes status ailments and bundles as a comma separated list.
// Unknown ids are dropped. With durations set, any duration is appended to
// each status; the optional duration overrides the catalog.
func Statuses(c *Context, ids, bundleIDs []int, durations bool, opts ...ailments.Option) string {
	var descs []string
	for _, id := range ids {
		status := ailments.Resolve(c.Region, id, c.Args, opts...)
		if status == nil {
			continue
		}
		desc := status.Description
		if durations {
			desc = status.String()
		}
		if desc != "" {
			descs = append(descs, desc)
		}
	}
	for _, id := range bundleIDs {
		if bundle := ailments.ResolveBundle(c.Region, id); bundle != nil && bundle.Description != "" {
			descs = append(descs, bundle.Description)
		}
	}
	return strings.Join(descs, ", ")
}

// verbOf returns the verb of the first known status.
func verbOf(c *Context, ids []int) ailments.Verb {
	for _, id := range ids {
		if status := ailments.Resolve(c.Region, id, c.Args); status != nil {
			return status.Verb
		}
	}
	return ailments.Grants
}

// EuroFixed formats a damage factor as a multiplier with two decimals and a
// decimal comma: 70 becomes "0,70".
func EuroFixed(factor int) string {
	return strings.Replace(strconv.FormatFloat(float64(factor)/100, 'f', 2, 64), ".", ",", 1)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// join appends the non-empty clauses to desc with ", ".
func join(desc string, clauses ...string) string {
	for _, clause := range clauses {
		if clause != "" {
			desc += ", " + clause
		}
	}
	return desc
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
