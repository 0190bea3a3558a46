// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package captures converts every ability in battle init captures.
package captures

import (
	"context"
	"log"

	"github.com/mdhender/ffrkconv/abilities"
	"github.com/mdhender/ffrkconv/enlir"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of files converted at the same time.
const DefaultWorkers = 4

// Sink defines the store operations needed to archive conversions.
// ArchiveCapture must store the capture and its rows atomically and report
// a capture that is already archived as a duplicate.
type Sink interface {
	ArchiveCapture(ctx context.Context, cf *model.CaptureFile, rows []*model.AbilityRow) (int64, bool, error)
}

// Service converts capture files.
type Service struct {
	regions   map[string]*gamedata.Region
	reference *enlir.All
	sink      Sink
	workers   int
	debug     bool
	fs        afero.Fs
}

// NewService creates a new Service. The reference dataset and the sink are
// optional.
func NewService(regions map[string]*gamedata.Region, reference *enlir.All, sink Sink) *Service {
	return &Service{
		regions:   regions,
		reference: reference,
		sink:      sink,
		workers:   DefaultWorkers,
		fs:        afero.NewOsFs(),
	}
}

// SetFS sets the filesystem for testing.
func (s *Service) SetFS(fs afero.Fs) {
	s.fs = fs
}

// SetWorkers sets the number of files converted at the same time.
// Values below one are ignored.
func (s *Service) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

func (s *Service) SetDebug(debug bool) {
	s.debug = debug
}

// Result is the outcome of converting one capture file.
type Result struct {
	Path      string
	Region    string
	Capture   *model.ConvertedCapture
	CaptureID int64 // zero when not archived
	Duplicate bool  // true if the capture was already archived

	// Err is set when the file could not be converted or archived.
	Err error
	// Errors holds the abilities that could not be converted.
	Errors []error
}

// ConvertFiles converts the files in parallel. Results are in the order of
// paths. A file that fails never stops the others; the returned error is
// only set when ctx is cancelled.
func (s *Service) ConvertFiles(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.ConvertFile(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ConvertFile converts a single capture file and archives it when the
// service has a sink.
func (s *Service) ConvertFile(ctx context.Context, path string) *Result {
	result := &Result{Path: path}

	capture, err := Read(s.fs, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Region = capture.Region
	if s.debug {
		log.Printf("captures: %s: processing as %s\n", path, capture.Region)
	}

	r, ok := s.regions[capture.Region]
	if !ok {
		result.Err = &ErrRegion{Path: path, Region: capture.Region}
		return result
	}

	result.Capture, result.Errors = Convert(r, capture.Data, s.reference)
	for _, err := range result.Errors {
		log.Printf("warning: %s: %v\n", path, err)
	}

	if s.sink != nil {
		result.CaptureID, result.Duplicate, result.Err = s.archive(ctx, capture, result.Capture)
	}

	return result
}

// Convert converts every ability of a capture. Abilities that fail are
// skipped and their errors returned.
func Convert(r *gamedata.Region, data model.BattleInitData, reference *enlir.All) (*model.ConvertedCapture, []error) {
	var errs []error
	names := abilities.WithNames(reference.AbilityName)

	convert := func(list []model.AbilityData, soulBreak bool) []*model.Ability {
		if soulBreak {
			list = append([]model.AbilityData(nil), list...)
			for i := range list {
				list[i].SoulBreak = &soulBreak
			}
		}
		converted, listErrs := abilities.ConvertAll(r, list, names)
		errs = append(errs, listErrs...)
		if converted == nil {
			converted = []*model.Ability{}
		}
		return converted
	}
	characters := func(list []model.Character) []*model.ConvertedCharacter {
		out := []*model.ConvertedCharacter{}
		for _, character := range list {
			cc := &model.ConvertedCharacter{Name: character.DisplayName()}
			if ec, ok := reference.Character(character.ID.Int()); ok {
				name := ec.Name
				cc.NameGl = &name
			}
			cc.Abilities = convert(character.Abilities, false)
			cc.SoulBreaks = convert(character.SoulStrikes, true)
			out = append(out, cc)
		}
		return out
	}

	cc := &model.ConvertedCapture{
		Buddy:     characters(data.Battle.Buddy),
		Supporter: characters(data.Battle.Supporter),
		Magicite:  []*model.ConvertedMagicite{},
	}
	for _, beast := range append(append([]model.Beast(nil), data.Battle.MainBeast...), data.Battle.SubBeast...) {
		cm := &model.ConvertedMagicite{}
		if em, ok := reference.MagiciteByID(beast.ID.Int()); ok {
			name := em.Name
			cm.NameGl = &name
		}
		cm.Skills = convert(beast.ActiveSkills, false)
		cc.Magicite = append(cc.Magicite, cm)
	}

	return cc, errs
}

// archive stores the capture and its abilities. A capture that is already
// archived is left alone.
func (s *Service) archive(ctx context.Context, capture *Capture, cc *model.ConvertedCapture) (int64, bool, error) {
	var rows []*model.AbilityRow
	add := func(owner, slot string, list []*model.Ability) {
		for _, ability := range list {
			rows = append(rows, &model.AbilityRow{Owner: owner, Slot: slot, Ability: ability})
		}
	}
	for _, character := range append(append([]*model.ConvertedCharacter(nil), cc.Buddy...), cc.Supporter...) {
		add(character.Name, model.SlotAbility, character.Abilities)
		add(character.Name, model.SlotSoulBreak, character.SoulBreaks)
	}
	for _, magicite := range cc.Magicite {
		owner := ""
		if magicite.NameGl != nil {
			owner = *magicite.NameGl
		}
		add(owner, model.SlotSkill, magicite.Skills)
	}

	cf := &model.CaptureFile{Path: capture.Path, Region: capture.Region, SHA256: capture.SHA256}
	captureID, duplicate, err := s.sink.ArchiveCapture(ctx, cf, rows)
	if err != nil {
		return 0, false, &ErrDatabase{Op: "archive capture", Err: err}
	}
	return captureID, duplicate, nil
}
