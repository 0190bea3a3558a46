// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package gamedata_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/spf13/afero"
)

const testdataPath = "../testdata"

func loadRegion(t *testing.T, name string) *gamedata.Region {
	t.Helper()
	r, err := gamedata.Load(afero.NewOsFs(), filepath.Join(testdataPath, name+".json"))
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return r
}

func TestLoadDir(t *testing.T) {
	regions, err := gamedata.LoadDir(afero.NewOsFs(), testdataPath, "gl", "jp")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	for _, name := range []string{"gl", "jp"} {
		r, ok := regions[name]
		if !ok {
			t.Fatalf("region %s: not loaded", name)
		}
		if r.Name() != name {
			t.Errorf("name: want %q, got %q", name, r.Name())
		}
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"not json", `{`, "parse region"},
		{"no region", `{"conf":{}}`, "missing region name"},
		{"no attack", `{"region":"gl","conf":{}}`, "ABILITY_ID_OF.ATTACK"},
		{"no target range", `{"region":"gl","conf":{"ABILITY_ID_OF":{"ATTACK":1}}}`, "TARGET_RANGE"},
		{"bad status id", `{"region":"gl","conf":{"ABILITY_ID_OF":{"ATTACK":1},"TARGET_RANGE":{"SINGLE":1},"TARGET_SEGMENT":{"OPPONENT":1},"ATK_TYPE":{"DIRECT":1}},"statusAilments":{"x":{"_name":"X"}}}`, "status ailment id"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gamedata.Parse([]byte(tc.input))
			if err == nil {
				t.Fatalf("want error containing %q, got nil", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error: want %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := gamedata.Load(afero.NewMemMapFs(), "/data/gl.json")
	if err == nil {
		t.Fatal("want error for missing file, got nil")
	}
}

func TestLookups(t *testing.T) {
	gl := loadRegion(t, "gl")

	if got := gl.AttackID(); got != 30111001 {
		t.Errorf("attack id: want %d, got %d", 30111001, got)
	}
	if got, _ := gl.School(2); got != "White Magic" {
		t.Errorf("school: want %q, got %q", "White Magic", got)
	}
	if got, _ := gl.School(17); got != "Darkness" {
		t.Errorf("school: want %q, got %q", "Darkness", got)
	}
	if _, ok := gl.School(999); ok {
		t.Errorf("school 999: want not found")
	}
	if got, _ := gl.DamageType(1); got != "PHY" {
		t.Errorf("damage type: want %q, got %q", "PHY", got)
	}
	if got, _ := gl.DamageType(8); got != "NIN" {
		t.Errorf("damage type: want %q, got %q", "NIN", got)
	}
	if got, _ := gl.Element(102); got != "Lightning" {
		t.Errorf("element: want %q, got %q", "Lightning", got)
	}
	if got, _ := gl.Elements([]int{102, 0, 104, 999}); got != "Lightning, Wind" {
		t.Errorf("elements: want %q, got %q", "Lightning, Wind", got)
	}
	if _, ok := gl.Elements([]int{0}); ok {
		t.Errorf("elements of zero: want not found")
	}
	if code, _ := gl.Code(gamedata.AtkType, "INDIRECT"); code != 2 {
		t.Errorf("INDIRECT: want 2, got %d", code)
	}
	if name, _ := gl.CodeName(gamedata.TargetRange, 3); name != "SELF" {
		t.Errorf("range 3: want SELF, got %q", name)
	}
}

func TestIsAprilFool(t *testing.T) {
	gl := loadRegion(t, "gl")
	for _, tc := range []struct {
		id   int
		want bool
	}{
		{30999001, true},
		{30990000, true},
		{30990099, true},
		{30990100, false},
		{30271101, false},
	} {
		if got := gl.IsAprilFool(tc.id); got != tc.want {
			t.Errorf("IsAprilFool(%d): want %v, got %v", tc.id, tc.want, got)
		}
	}
}

func TestActions(t *testing.T) {
	gl := loadRegion(t, "gl")

	action, ok := gl.Action(80)
	if !ok {
		t.Fatal("action 80: not found")
	}
	want := []int{2, 4, 0}
	if len(action.BurstAbilityArgs) != len(want) {
		t.Fatalf("burst args: want %v, got %v", want, action.BurstAbilityArgs)
	}
	for i := range want {
		if action.BurstAbilityArgs[i] != want[i] {
			t.Errorf("burst args: want %v, got %v", want, action.BurstAbilityArgs)
		}
	}

	if _, ok := gl.Action(999); ok {
		t.Errorf("action 999: want not found")
	}
	if _, ok := gl.ActionArgs("ExtractedOnlyAction"); !ok {
		t.Errorf("ExtractedOnlyAction: want extracted args")
	}

	sa, ok := gl.StatusAilment(257)
	if !ok {
		t.Fatal("status 257: not found")
	}
	if sa.ID != 257 || sa.Name != "NO_AIR_TIME_2" {
		t.Errorf("status 257: got %d %q", sa.ID, sa.Name)
	}
	if len(sa.FuncMap.Entry) != 1 || len(sa.FuncMap.Exit) != 1 {
		t.Errorf("status 257 hooks: got %+v", sa.FuncMap)
	}
	if !gl.InBundle("DISPEL", 257) {
		t.Errorf("257: want member of DISPEL")
	}
	if gl.InBundle("ESNA", 257) {
		t.Errorf("257: want not a member of ESNA")
	}

	jp := loadRegion(t, "jp")
	if !jp.IsFlightAttackException(30544011) {
		t.Errorf("jp 30544011: want flight attack exception")
	}
	if gl.IsFlightAttackException(30544011) {
		t.Errorf("gl 30544011: want no flight attack exception")
	}
}

func TestTitleCase(t *testing.T) {
	for _, tc := range []struct {
		input, want string
	}{
		{"NO_AIR_TIME_2", "No Air Time 2"},
		{"WHITE_MAGIC", "White Magic"},
		{"PROTECT", "Protect"},
		{"", ""},
	} {
		if got := gamedata.TitleCase(tc.input); got != tc.want {
			t.Errorf("TitleCase(%q): want %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestDescribeTarget(t *testing.T) {
	gl := loadRegion(t, "gl")
	for _, tc := range []struct {
		rng, segment, active int
		want                 string
	}{
		{3, 2, 1, "Self"},
		{1, 1, 1, "Random enemies"},
		{1, 2, 4, "Single"}, // cure spells that can target enemies
		{1, 1, 3, "Single enemy"},
		{2, 2, 1, "All allies"},
		{2, 1, 3, "All enemies"},
		{4, 2, 2, "Random ally"},
	} {
		got, ok := gl.DescribeTarget(tc.rng, tc.segment, tc.active)
		if !ok || got != tc.want {
			t.Errorf("DescribeTarget(%d, %d, %d): want %q, got %q (%v)", tc.rng, tc.segment, tc.active, tc.want, got, ok)
		}
	}
	if got, ok := gl.DescribeTarget(9, 9, 9); ok {
		t.Errorf("DescribeTarget(9, 9, 9): want not found, got %q", got)
	}
}

func TestDescribeTargetMethod(t *testing.T) {
	jp := loadRegion(t, "jp")
	for _, tc := range []struct {
		rng, segment, active, method int
		want                         string
	}{
		{1, 2, 2, 12, "Ally with KO or lowest HP% ally"},
		{1, 1, 3, 2, "Random enemy"},
		{2, 1, 3, 2, "Random enemies"},
		{1, 2, 2, 3, "Lowest HP% ally"},
		{1, 2, 2, 8, "Ally with KO"},
		{1, 1, 3, 4, "Highest HP enemy"},
		{2, 2, 1, 6, "All allies"}, // falls back to the target
	} {
		got, ok := jp.DescribeTargetMethod(tc.rng, tc.segment, tc.active, tc.method)
		if !ok || got != tc.want {
			t.Errorf("DescribeTargetMethod(%d, %d, %d, %d): want %q, got %q (%v)", tc.rng, tc.segment, tc.active, tc.method, tc.want, got, ok)
		}
	}
}

// minimal region; conf and statusAilments are appended by the tests
const minimalRegion = `{"region":"gl","conf":{"ABILITY_ID_OF":{"ATTACK":1},"TARGET_RANGE":{"SINGLE":1,"ALONE":1,"ALL":2},"TARGET_SEGMENT":{"OPPONENT":1},"ATK_TYPE":{"DIRECT":1}},`

func TestParse_DuplicateCodes(t *testing.T) {
	for i := 0; i < 10; i++ {
		r, err := gamedata.Parse([]byte(minimalRegion + `"statusAilments":{}}`))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if name, _ := r.CodeName(gamedata.TargetRange, 1); name != "ALONE" {
			t.Fatalf("range 1: want %q, got %q", "ALONE", name)
		}
		if code, _ := r.Code(gamedata.TargetRange, "SINGLE"); code != 1 {
			t.Errorf("SINGLE: want 1, got %d", code)
		}
	}
}

func TestParse_IncreaseLevel(t *testing.T) {
	input := minimalRegion + `"statusAilments":{
		"10":{"_name":"TOP","increaseLevel":1,"funcMap":{}},
		"11":{"_name":"NESTED","params":{"increaseLevel":-2,"other":"x"},"funcMap":{}},
		"12":{"_name":"BOTH","increaseLevel":3,"params":{"increaseLevel":4},"funcMap":{}},
		"13":{"_name":"NONE","funcMap":{}}
	}}`
	r, err := gamedata.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, tc := range []struct {
		id, want int
	}{
		{10, 1},
		{11, -2},
		{12, 3},
		{13, 0},
	} {
		sa, ok := r.StatusAilment(tc.id)
		if !ok {
			t.Fatalf("status %d: not found", tc.id)
		}
		if sa.IncreaseLevel != tc.want {
			t.Errorf("status %d: increase level: want %d, got %d", tc.id, tc.want, sa.IncreaseLevel)
		}
	}

	_, err = gamedata.Parse([]byte(minimalRegion + `"statusAilments":{"10":{"_name":"BAD","params":{"increaseLevel":"x"}}}}`))
	if err == nil || !strings.Contains(err.Error(), "params.increaseLevel") {
		t.Errorf("bad params: want params.increaseLevel error, got %v", err)
	}
}
