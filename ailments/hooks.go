// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ailments

import (
	"github.com/mdhender/ffrkconv/gamedata"
)

// Hook describes a status ailment from the client handler function named in
// its funcMap. It returns nil when it cannot describe the ailment.
type Hook func(sa *gamedata.StatusAilment) *Status

var hooks = map[string]Hook{}

// RegisterHook registers a handler by client function name. It must only be
// called from init functions.
func RegisterHook(name string, h Hook) {
	hooks[name] = h
}

func init() {
	RegisterHook("setForIncreaseHeavyChargeLevel", func(sa *gamedata.StatusAilment) *Status {
		if sa.IncreaseLevel == 0 {
			return nil
		}
		verb := Causes
		if sa.IncreaseLevel > 0 {
			verb = Grants
		}
		return &Status{Verb: verb, Description: "Heavy Charge " + withPlus(sa.IncreaseLevel)}
	})
	RegisterHook("setForUnsetHeavyCharge", func(sa *gamedata.StatusAilment) *Status {
		return &Status{Verb: Causes, Description: "Heavy Charge =0"}
	})
	RegisterHook("entryForFlight", func(sa *gamedata.StatusAilment) *Status {
		return &Status{Verb: Grants, Description: "Airborne"}
	})
}

func describeHooks(sa *gamedata.StatusAilment) *Status {
	for _, names := range []gamedata.HookNames{sa.FuncMap.Entry, sa.FuncMap.Set} {
		for _, name := range names {
			h, ok := hooks[name]
			if !ok {
				continue
			}
			if status := h(sa); status != nil {
				return status
			}
		}
	}
	return nil
}
