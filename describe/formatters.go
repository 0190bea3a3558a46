// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package describe

import (
	"fmt"
	"strconv"

	"github.com/mdhender/ffrkconv/ailments"
	"github.com/mdhender/ffrkconv/model"
)

func init() {
	Register("HealHpAction", Heal)
	Register("HealHpAndCustomParamAction", healAndCustomParam)
	Register("HealHpAndHealSaAction", healAndHealSa)

	Register("MagicAttackAction", Attack)
	Register("MagicAttackMultiAction", Attack)
	Register("MagicAttackMultiWithMultiElementAction", Attack)
	Register("PhysicalAttackElementAction", Attack)
	Register("PhysicalAttackMultiAction", Attack)
	Register("PhysicalAttackMultiWithMultiElementAction", Attack)
	Register("HybridAttackMultiAction", HybridAttack)

	Register("PhysicalAttackMultiAndHealHpByHitDamageAction", attackAndDrain)
	Register("PhysicalAttackMultiAndHpBarterAndSelfSaAction", attackAndBarter)
	Register("PhysicalAttackMultiAndSelfSaAction", func(c *Context) string {
		return join(Attack(c), SelfStatus(c))
	})

	Register("SelfSaAction", SelfStatus)
	Register("SetSaAction", setSa)
	Register("HealSaAction", healSa)
	Register("TranceAction", SelfStatus)
}

func healAndCustomParam(c *Context) string {
	id := c.Options.Int("status_ailments_id")
	if id == 0 {
		return Heal(c)
	}
	duration := ms(c.Args.Int(model.StatusAilmentsOptionsDuration))
	return join(Heal(c), Statuses(c, []int{id}, nil, true, ailments.WithDuration(duration)))
}

func healAndHealSa(c *Context) string {
	removes := Statuses(c, c.Args.List(model.UnsetSaID), c.Args.List(model.UnsetSaBundle), false)
	if removes == "" {
		return Heal(c)
	}
	return join(Heal(c), "removes "+removes)
}

func attackAndDrain(c *Context) string {
	desc := Attack(c)
	if factor := c.Args.Int(model.HealHpFactor); factor != 0 {
		desc = join(desc, fmt.Sprintf("heals the user for %d%% of the damage dealt", factor))
	}
	return desc
}

func attackAndBarter(c *Context) string {
	desc := Attack(c)
	if rate := c.Args.Int(model.BarterRate); rate != 0 {
		pct := strconv.FormatFloat(float64(rate)/10, 'f', -1, 64)
		desc = join(desc, "damages the user for "+pct+"% max HP")
	}
	return join(desc, SelfStatus(c))
}

func setSa(c *Context) string {
	ids := c.Args.List(model.SetSaID)
	list := Statuses(c, ids, c.Args.List(model.SetSaBundle), true)
	if list == "" {
		return ""
	}
	return upperFirst(ailments.VerbText(verbOf(c, ids)) + list)
}

func healSa(c *Context) string {
	list := Statuses(c, c.Args.List(model.UnsetSaID), c.Args.List(model.UnsetSaBundle), false)
	if list == "" {
		return ""
	}
	return "Removes " + list
}
