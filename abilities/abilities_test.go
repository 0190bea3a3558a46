// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package abilities_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/ffrkconv/abilities"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
	"github.com/mdhender/ffrkconv/namedargs"
	"github.com/spf13/afero"
)

var updateGolden = flag.Bool("update-golden", false, "update golden files")

const testdataPath = "../testdata"

func loadRegions(t *testing.T) map[string]*gamedata.Region {
	t.Helper()
	regions, err := gamedata.LoadDir(afero.NewOsFs(), testdataPath, "gl", "jp")
	if err != nil {
		t.Fatalf("load regions: %v", err)
	}
	return regions
}

func readAbility(t *testing.T, abilityID string) model.AbilityData {
	t.Helper()
	input, err := os.ReadFile(filepath.Join(testdataPath, "abilities", abilityID+".json"))
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	var data model.AbilityData
	if err := json.Unmarshal(input, &data); err != nil {
		t.Fatalf("unmarshal input: %v", err)
	}
	return data
}

func TestConvert_Golden(t *testing.T) {
	regions := loadRegions(t)

	testCases := []struct {
		name    string
		region  string
		effects string
	}{
		{name: "30271101", region: "gl", effects: "Four single attacks (0,75 each), 20% additional critical chance"},
		{name: "30181131", region: "gl", effects: "Three single ranged attacks (0,70 each), grants No Air Time 2 to the user"},
		{name: "30121291", region: "gl", effects: "Restores HP (105), damages undeads, removes negative effects"},
		{name: "30511390", region: "jp", effects: "Restores HP (55), MAG and MND 30% for 25 seconds"},
		{name: "30544011", region: "jp", effects: "Twenty-two single ranged jump attacks (0,36 each)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			goldenPath := filepath.Join("testdata", tc.name+".golden.json")

			ability, err := abilities.Convert(regions[tc.region], readAbility(t, tc.name))
			if err != nil {
				t.Fatalf("Convert: %v", err)
			} else if ability == nil {
				t.Fatalf("Convert: want ability, got nil")
			}
			if ability.Effects == nil || *ability.Effects != tc.effects {
				t.Errorf("effects: want %q, got %v", tc.effects, ability.Effects)
			}

			got, err := json.MarshalIndent(ability, "", "  ")
			if err != nil {
				t.Fatalf("json.MarshalIndent: %v", err)
			}
			got = append(got, '\n')

			if *updateGolden {
				if err := os.WriteFile(goldenPath, got, 0644); err != nil {
					t.Fatalf("failed to update golden file: %v", err)
				}
				t.Logf("updated golden file: %s", goldenPath)
				return
			}

			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("failed to read golden file %q: %v\nRun with -update-golden to create it", goldenPath, err)
			}

			if !bytes.Equal(got, want) {
				t.Errorf("output differs from golden file %q\nRun with -update-golden to update", goldenPath)
				t.Errorf("got:\n%s", got)
				t.Errorf("want:\n%s", want)
			}
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	regions := loadRegions(t)
	data := readAbility(t, "30181131")

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		ability, err := abilities.Convert(regions["gl"], data)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		out, err := json.Marshal(ability)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		outputs = append(outputs, out)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Errorf("conversions differ\n%s\n%s", outputs[0], outputs[1])
	}
}

func TestConvert_Rejected(t *testing.T) {
	gl := loadRegions(t)["gl"]

	for _, abilityID := range []model.IntString{"30111001", "30999001", "30990000", "30990099"} {
		data := readAbility(t, "30271101")
		data.AbilityID = abilityID
		ability, err := abilities.Convert(gl, data)
		if err != nil {
			t.Errorf("%s: want no error, got %v", abilityID, err)
		}
		if ability != nil {
			t.Errorf("%s: want nil, got %+v", abilityID, ability)
		}
	}
}

func TestConvert_NoDamageFactor(t *testing.T) {
	gl := loadRegions(t)["gl"]

	data := readAbility(t, "30271101")
	data.Options["arg1"] = "0"
	ability, err := abilities.Convert(gl, data)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ability.Multiplier != nil {
		t.Errorf("multiplier: want nil, got %v", *ability.Multiplier)
	}
}

func TestConvert_Alias(t *testing.T) {
	gl := loadRegions(t)["gl"]

	data := readAbility(t, "30271101")
	data.Options["alias_name"] = " Dread Weapon "
	ability, err := abilities.Convert(gl, data)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ability.Alias != nil {
		t.Errorf("alias: want nil, got %q", *ability.Alias)
	}

	data.Options["alias_name"] = "Dread Weapon (Shadow)"
	ability, err = abilities.Convert(gl, data)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ability.Alias == nil || *ability.Alias != "Dread Weapon (Shadow)" {
		t.Errorf("alias: want %q, got %v", "Dread Weapon (Shadow)", ability.Alias)
	}
}

func TestConvert_MissingData(t *testing.T) {
	gl := loadRegions(t)["gl"]

	data := readAbility(t, "30271101")
	data.ActionID = "4242"
	data.CategoryID = "99"
	delete(data.Options, "counter_enable")
	delete(data.Options, "ss_point")
	ability, err := abilities.Convert(gl, data)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ability.School != nil || ability.Formula != nil || ability.Effects != nil || ability.ActionClass != nil || ability.Args != nil {
		t.Errorf("want nil school, formula, effects, class and args, got %+v", ability)
	}
	if ability.Counter != nil || ability.SB != nil {
		t.Errorf("want nil counter and sb, got %v %v", ability.Counter, ability.SB)
	}
	if ability.Target == nil || *ability.Target != "Single enemy" {
		t.Errorf("target: want %q, got %v", "Single enemy", ability.Target)
	}
}

func TestConvert_SoulBreakFlag(t *testing.T) {
	gl := loadRegions(t)["gl"]

	data := readAbility(t, "30121291")
	yes := true
	data.SoulBreak = &yes
	ability, err := abilities.Convert(gl, data)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "Restores HP (105), removes negative effects"
	if ability.Effects == nil || *ability.Effects != want {
		t.Errorf("effects: want %q, got %v", want, ability.Effects)
	}
}

func TestConvert_NameLookup(t *testing.T) {
	jp := loadRegions(t)["jp"]

	names := func(abilityID int) (string, bool) {
		if abilityID == 30511390 {
			return "Healing Wind (IV)", true
		}
		return "", false
	}
	ability, err := abilities.Convert(jp, readAbility(t, "30511390"), abilities.WithNames(names))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ability.NameGl == nil || *ability.NameGl != "Healing Wind (IV)" {
		t.Errorf("nameGl: want %q, got %v", "Healing Wind (IV)", ability.NameGl)
	}

	ability, err = abilities.Convert(jp, readAbility(t, "30544011"), abilities.WithNames(names))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ability.NameGl != nil {
		t.Errorf("nameGl: want nil, got %q", *ability.NameGl)
	}
}

func TestConvert_SlotErrors(t *testing.T) {
	gl := loadRegions(t)["gl"]

	data := readAbility(t, "30271101")
	data.Options["arg12"] = "twelve"
	_, err := abilities.Convert(gl, data)

	var abilityErr *abilities.AbilityError
	if !errors.As(err, &abilityErr) {
		t.Fatalf("want *AbilityError, got %v", err)
	} else if abilityErr.AbilityID != 30271101 {
		t.Errorf("ability id: want 30271101, got %d", abilityErr.AbilityID)
	}
	var malformed *namedargs.MalformedSlotError
	if !errors.As(err, &malformed) {
		t.Fatalf("want *MalformedSlotError, got %v", err)
	} else if malformed.Slot != 12 {
		t.Errorf("slot: want 12, got %d", malformed.Slot)
	}
}

func TestConvertAll(t *testing.T) {
	gl := loadRegions(t)["gl"]

	attack := readAbility(t, "30271101")
	attack.AbilityID = "30111001"
	broken := readAbility(t, "30181131")
	delete(broken.Options, "arg30")

	list, errs := abilities.ConvertAll(gl, []model.AbilityData{
		readAbility(t, "30271101"),
		attack,
		broken,
		readAbility(t, "30121291"),
	})
	if len(list) != 2 {
		t.Fatalf("abilities: want 2, got %d", len(list))
	}
	if list[0].ID != 30271101 || list[1].ID != 30121291 {
		t.Errorf("order: want 30271101, 30121291, got %d, %d", list[0].ID, list[1].ID)
	}
	if len(errs) != 1 {
		t.Fatalf("errors: want 1, got %d", len(errs))
	}
	var missing *namedargs.MissingSlotError
	if !errors.As(errs[0], &missing) || missing.Slot != 30 {
		t.Errorf("want missing arg30, got %v", errs[0])
	}
}

func TestUnsupported(t *testing.T) {
	gl := loadRegions(t)["gl"]

	want := []abilities.ClassSupport{
		{ClassName: "BrokenArgsAction", Schema: true},
		{ClassName: "ExtractedOnlyAction", Schema: true},
		{ClassName: "UnmappedAction"},
	}
	got := abilities.Unsupported(gl)
	if len(got) != len(want) {
		t.Fatalf("unsupported: want %+v, got %+v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unsupported %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}
