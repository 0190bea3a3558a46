// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package describe_test

import (
	"path/filepath"
	"testing"

	"github.com/mdhender/ffrkconv/describe"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataPath = "../testdata"

func loadRegion(t *testing.T, name string) *gamedata.Region {
	t.Helper()
	r, err := gamedata.Load(afero.NewOsFs(), filepath.Join(testdataPath, name+".json"))
	require.NoError(t, err)
	return r
}

func namedArgs(values map[model.Field]int, lists map[model.Field][]int) *model.NamedArgs {
	args := model.NewNamedArgs()
	for k, v := range values {
		args.Set(k, v)
	}
	for k, v := range lists {
		args.SetList(k, v)
	}
	return args
}

// ability options for an ability that can be countered
func ability(extra map[string]string) model.Options {
	opts := model.Options{
		"target_range":              "1",
		"counter_enable":            "1",
		"max_damage_threshold_type": "0",
		"status_ailments_id":        "0",
		"status_ailments_factor":    "0",
	}
	for k, v := range extra {
		opts[k] = v
	}
	return opts
}

func TestEuroFixed(t *testing.T) {
	assert.Equal(t, "0,70", describe.EuroFixed(70))
	assert.Equal(t, "0,36", describe.EuroFixed(36))
	assert.Equal(t, "1,00", describe.EuroFixed(100))
	assert.Equal(t, "12,34", describe.EuroFixed(1234))
	assert.Equal(t, "0,00", describe.EuroFixed(0))
}

func TestAttack_Barrage(t *testing.T) {
	gl := loadRegion(t, "gl")

	for _, tc := range []struct {
		name    string
		barrage *int
		want    string
	}{
		{"absent", nil, "One single attack (0,75)"},
		{"zero", ptr(0), "One single attack (0,75)"},
		{"one", ptr(1), "One single attack (0,75)"},
		{"two", ptr(2), "Two single attacks (0,75 each)"},
		{"thirteen", ptr(13), "Thirteen single attacks (0,75 each)"},
		{"twenty-two", ptr(22), "Twenty-two single attacks (0,75 each)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			values := map[model.Field]int{model.DamageFactor: 75, model.AtkType: 1}
			if tc.barrage != nil {
				values[model.BarrageNum] = *tc.barrage
			}
			c := &describe.Context{Region: gl, Options: ability(nil), Args: namedArgs(values, nil)}
			assert.Equal(t, tc.want, describe.Attack(c))
		})
	}
}

func TestAttack_Clauses(t *testing.T) {
	gl := loadRegion(t, "gl")

	values := map[model.Field]int{
		model.DamageFactor: 150,
		model.BarrageNum:   2,
		model.AtkType:      2,
		model.ForceHit:     1,
		model.Critical:     50,
	}
	opts := ability(map[string]string{
		"target_range":              "2",
		"max_damage_threshold_type": "1",
		"status_ailments_id":        "200",
		"status_ailments_factor":    "25",
	})
	c := &describe.Context{Region: gl, Options: opts, Args: namedArgs(values, nil)}
	assert.Equal(t,
		"Two group ranged attacks (1,50 each), capped at 99999, 100% hit rate, 50% additional critical chance, causes Poison (25%)",
		describe.Attack(c))

	// soul breaks omit the hit rate
	opts["counter_enable"] = "0"
	opts["status_ailments_id"] = "4242"
	assert.Equal(t,
		"Two group ranged attacks (1,50 each), capped at 99999, 50% additional critical chance, causes unknown status 4242 (25%)",
		describe.Attack(c))

	// an explicit flag wins over counter_enable
	no := false
	c.SoulBreak = &no
	opts["status_ailments_id"] = "0"
	opts["max_damage_threshold_type"] = "0"
	assert.Equal(t,
		"Two group ranged attacks (1,50 each), 100% hit rate, 50% additional critical chance",
		describe.Attack(c))

	// no chance is shown when the factor is missing
	delete(opts, "status_ailments_factor")
	opts["status_ailments_id"] = "200"
	assert.Equal(t,
		"Two group ranged attacks (1,50 each), 100% hit rate, 50% additional critical chance, causes Poison",
		describe.Attack(c))
}

func TestAttack_Jump(t *testing.T) {
	gl := loadRegion(t, "gl")
	args := namedArgs(map[model.Field]int{model.DamageFactor: 36, model.BarrageNum: 22, model.AtkType: 2}, nil)
	args.IsFlightAttack = true
	c := &describe.Context{Region: gl, Options: ability(map[string]string{"counter_enable": "0"}), Args: args}
	assert.Equal(t, "Twenty-two single ranged jump attacks (0,36 each)", describe.Attack(c))
}

func TestHybridAttack(t *testing.T) {
	gl := loadRegion(t, "gl")
	args := namedArgs(map[model.Field]int{model.DamageFactor: 80, model.MatkDamageFactor: 120, model.BarrageNum: 3}, nil)
	c := &describe.Context{Region: gl, Options: ability(nil), Args: args}
	assert.Equal(t, "Three single hybrid attacks (0,80 or 1,20 each)", describe.HybridAttack(c))
}

func TestHeal(t *testing.T) {
	gl := loadRegion(t, "gl")

	c := &describe.Context{Region: gl, Options: ability(nil), Args: namedArgs(map[model.Field]int{model.Factor: 105}, nil)}
	assert.Equal(t, "Restores HP (105), damages undeads", describe.Heal(c))

	c = &describe.Context{Region: gl, Options: model.Options{}, Args: namedArgs(nil, nil)}
	assert.Equal(t, "Restores HP", describe.Heal(c))
}

func TestSelfStatus(t *testing.T) {
	gl := loadRegion(t, "gl")

	c := &describe.Context{Region: gl, Options: ability(nil), Args: namedArgs(map[model.Field]int{model.SelfSaID: 257}, nil)}
	assert.Equal(t, "grants No Air Time 2 to the user", describe.SelfStatus(c))

	// durations are never shown for self statuses
	c.Args = namedArgs(map[model.Field]int{model.SelfSaID: 301}, nil)
	assert.Equal(t, "grants Haste to the user", describe.SelfStatus(c))
	c.Args = namedArgs(map[model.Field]int{model.SelfSaID: 301, model.SelfSaOptionsDuration: 15000}, nil)
	assert.Equal(t, "grants Haste to the user", describe.SelfStatus(c))
	c.Args = namedArgs(map[model.Field]int{model.OptionalSelfSaID: 301, model.SaSelfOptionsDuration: 8000}, nil)
	assert.Equal(t, "grants Haste to the user", describe.SelfStatus(c))

	c.Args = namedArgs(map[model.Field]int{model.SelfSaID: 4242}, nil)
	assert.Equal(t, "grants unknown status to the user", describe.SelfStatus(c))

	c.Args = namedArgs(map[model.Field]int{model.SelfSaBundleID: 1}, nil)
	assert.Equal(t, "grants positive effects to the user", describe.SelfStatus(c))

	// 3 is both a bundle and a status; the bundle slot only names bundles
	c.Args = namedArgs(map[model.Field]int{model.SelfSaBundleID: 3}, nil)
	assert.Equal(t, "grants BLIND_AND_POISON to the user", describe.SelfStatus(c))
	c.Args = namedArgs(map[model.Field]int{model.SelfSaBundleID: 4242}, nil)
	assert.Equal(t, "grants unknown status to the user", describe.SelfStatus(c))

	c.Args = namedArgs(map[model.Field]int{model.SelfSaID: 0}, nil)
	assert.Equal(t, "", describe.SelfStatus(c))
}

func TestStatuses(t *testing.T) {
	gl := loadRegion(t, "gl")
	c := &describe.Context{Region: gl, Options: ability(nil), Args: namedArgs(nil, nil)}

	assert.Equal(t, "Poison, Blind, negative effects", describe.Statuses(c, []int{200, 4242, 201}, []int{2, 99}, false))
	assert.Equal(t, "Haste for 30 seconds", describe.Statuses(c, []int{301}, nil, true))
	assert.Equal(t, "Haste", describe.Statuses(c, []int{301}, nil, false))
	assert.Equal(t, "", describe.Statuses(c, nil, nil, false))
}

func TestFormat_Composites(t *testing.T) {
	gl := loadRegion(t, "gl")

	for _, tc := range []struct {
		name     string
		actionID int
		opts     model.Options
		values   map[model.Field]int
		lists    map[model.Field][]int
		want     string
	}{
		{
			name:     "drain",
			actionID: 60,
			opts:     ability(nil),
			values:   map[model.Field]int{model.DamageFactor: 100, model.BarrageNum: 2, model.HealHpFactor: 30},
			want:     "Two single attacks (1,00 each), heals the user for 30% of the damage dealt",
		},
		{
			name:     "drain without factor",
			actionID: 60,
			opts:     ability(nil),
			values:   map[model.Field]int{model.DamageFactor: 100, model.BarrageNum: 2},
			want:     "Two single attacks (1,00 each)",
		},
		{
			name:     "barter",
			actionID: 61,
			opts:     ability(nil),
			values:   map[model.Field]int{model.DamageFactor: 200, model.BarterRate: 125, model.SelfSaBundleID: 1},
			want:     "One single attack (2,00), damages the user for 12.5% max HP, grants positive effects to the user",
		},
		{
			name:     "attack and self status with duration",
			actionID: 103,
			opts:     ability(nil),
			values:   map[model.Field]int{model.DamageFactor: 70, model.BarrageNum: 3, model.AtkType: 2, model.SelfSaID: 257, model.SelfSaOptionsDuration: 8000},
			want:     "Three single ranged attacks (0,70 each), grants No Air Time 2 to the user",
		},
		{
			name:     "set status",
			actionID: 71,
			opts:     ability(nil),
			lists:    map[model.Field][]int{model.SetSaID: {300, 301}},
			want:     "Grants Protect, Haste for 30 seconds",
		},
		{
			name:     "remove status",
			actionID: 72,
			opts:     ability(nil),
			lists:    map[model.Field][]int{model.UnsetSaID: {200}, model.UnsetSaBundle: {3}},
			want:     "Removes Poison, BLIND_AND_POISON",
		},
		{
			name:     "heal and remove nothing",
			actionID: 90,
			opts:     ability(nil),
			values:   map[model.Field]int{model.Factor: 60},
			want:     "Restores HP (60), damages undeads",
		},
		{
			name:     "heal without status",
			actionID: 54,
			opts:     ability(map[string]string{"counter_enable": "0"}),
			values:   map[model.Field]int{model.Factor: 55},
			want:     "Restores HP (55)",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := describe.Format(gl, tc.actionID, tc.opts, namedArgs(tc.values, tc.lists), nil)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestFormat_Nil(t *testing.T) {
	gl := loadRegion(t, "gl")
	args := namedArgs(nil, nil)

	assert.Nil(t, describe.Format(gl, 7, ability(nil), nil, nil), "nil args")
	assert.Nil(t, describe.Format(gl, 999, ability(nil), args, nil), "unknown action")
	assert.Nil(t, describe.Format(gl, 201, ability(nil), args, nil), "no formatter")
	assert.Nil(t, describe.Format(gl, 72, ability(nil), args, nil), "nothing to say")

	assert.True(t, describe.Registered("PhysicalAttackMultiAction"))
	assert.False(t, describe.Registered("ExtractedOnlyAction"))
}

func ptr[T any](v T) *T {
	return &v
}
