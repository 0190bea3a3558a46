// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mdhender/ffrkconv"
	"github.com/mdhender/ffrkconv/abilities"
	"github.com/mdhender/ffrkconv/ailments"
	"github.com/mdhender/ffrkconv/captures"
	"github.com/mdhender/ffrkconv/config"
	"github.com/mdhender/ffrkconv/enlir"
	"github.com/mdhender/ffrkconv/gamedata"
	"github.com/mdhender/ffrkconv/model"
	store "github.com/mdhender/ffrkconv/stores/sqlite"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().StringP("config-file", "c", "", "load configuration from file")
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "ffrkconv",
		Short: "FFRK battle data converter",
		Long:  `Convert abilities captured from FFRK battles into readable records`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("ffrkconv: version %q\n", ffrkconv.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdAbility())
	cmdRoot.AddCommand(cmdClasses())
	cmdRoot.AddCommand(cmdConvert())
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdStatus())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdConvert() *cobra.Command {
	var outputFile string
	var dbPath string
	var workers int
	var enlirDir string
	var dataDir string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save results to file")
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "archive results in the SQLite database")
		cmd.Flags().IntVar(&workers, "workers", captures.DefaultWorkers, "number of files converted at the same time")
		cmd.Flags().StringVar(&enlirDir, "enlir-dir", enlirDir, "path to the reference dataset")
		cmd.Flags().StringVar(&dataDir, "data-dir", dataDir, "path to the region files")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "convert <capture-file>...",
		Short:        "convert the abilities in battle init captures",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1), // require at least one capture file
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			if quiet {
				verbose, debug = false, false
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("enlir-dir") {
				cfg.EnlirDir = enlirDir
			}
			if cmd.Flags().Changed("db") {
				cfg.Database = dbPath
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			fs := afero.NewOsFs()
			regions, err := gamedata.LoadDir(fs, cfg.DataDir, cfg.Regions...)
			if err != nil {
				return err
			}
			var reference *enlir.All
			if cfg.EnlirDir != "" {
				reference = enlir.TryLoadAll(fs, cfg.EnlirDir)
			}

			var sink captures.Sink
			if cfg.Database != "" {
				s, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: cfg.Database})
				if err != nil {
					return err
				}
				defer s.Close()
				sink = s
			}

			svc := captures.NewService(regions, reference, sink)
			svc.SetWorkers(cfg.Workers)
			svc.SetDebug(debug)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			results, err := svc.ConvertFiles(ctx, args)
			if err != nil {
				return err
			}

			converted := []*model.ConvertedCapture{}
			failed := 0
			for _, result := range results {
				if result.Err != nil {
					log.Printf("%s: %s: %v\n", result.Path, captures.ErrorCode(result.Err), result.Err)
					failed++
				}
				if result.Capture != nil {
					converted = append(converted, result.Capture)
				}
				if verbose {
					log.Printf("%s: %s: %d errors\n", result.Path, result.Region, len(result.Errors))
				}
			}

			// a single capture is written as an object, not an array
			var output any = converted
			if len(args) == 1 && len(converted) == 1 {
				output = converted[0]
			}
			if err := writeJSON(outputFile, output); err != nil {
				return err
			}
			if failed != 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdAbility() *cobra.Command {
	var region string
	var dataDir string
	soulBreak := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&region, "region", "gl", "region of the ability (gl or jp)")
		cmd.Flags().StringVar(&dataDir, "data-dir", dataDir, "path to the region files")
		cmd.Flags().BoolVar(&soulBreak, "soul-break", soulBreak, "treat the ability as a soul break")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "ability <ability-file>",
		Short:        "convert a single ability object",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to ability file
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, dataDir, region)
			if err != nil {
				return err
			}

			input, err := afero.ReadFile(afero.NewOsFs(), args[0])
			if err != nil {
				return err
			}
			var data model.AbilityData
			if err := json.Unmarshal(input, &data); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if cmd.Flags().Changed("soul-break") {
				data.SoulBreak = &soulBreak
			}

			ability, err := abilities.Convert(r, data)
			if err != nil {
				return err
			}
			return writeJSON("", ability)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdStatus() *cobra.Command {
	var region string
	var dataDir string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&region, "region", "gl", "region of the status ailment (gl or jp)")
		cmd.Flags().StringVar(&dataDir, "data-dir", dataDir, "path to the region files")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "status <status-ailment-id>...",
		Short:        "describe status ailments",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, dataDir, region)
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("status ailment id %q: %w", arg, err)
				}
				status := ailments.Resolve(r, id, nil)
				if status == nil {
					fmt.Printf("%d: unknown\n", id)
					continue
				}
				fmt.Printf("%d: %s %s\n", id, status.Verb, status)
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdClasses() *cobra.Command {
	var region string
	var dataDir string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&region, "region", "gl", "region to check (gl or jp)")
		cmd.Flags().StringVar(&dataDir, "data-dir", dataDir, "path to the region files")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "classes",
		Short:        "list action classes without a schema or a formatter",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, dataDir, region)
			if err != nil {
				return err
			}
			unsupported := abilities.Unsupported(r)
			for _, cs := range unsupported {
				var missing []string
				if !cs.Schema {
					missing = append(missing, "schema")
				}
				if !cs.Formatter {
					missing = append(missing, "formatter")
				}
				fmt.Printf("%s: missing %s\n", cs.ClassName, strings.Join(missing, " and "))
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.Printf("%s: %d of %d classes unsupported\n", region, len(unsupported), len(r.ClassNames()))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdInitDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a new SQLite archive",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.InitDatabase(args[0]); err != nil {
				return err
			}
			log.Printf("%s: created database\n", args[0])
			return nil
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(ffrkconv.Version().String())
				return nil
			}
			fmt.Println(ffrkconv.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(afero.NewOsFs(), configFile)
}

func loadRegion(cmd *cobra.Command, dataDir, region string) (*gamedata.Region, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	regions, err := gamedata.LoadDir(afero.NewOsFs(), cfg.DataDir, region)
	if err != nil {
		return nil, err
	}
	return regions[region], nil
}

// writeJSON writes v to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := afero.WriteFile(afero.NewOsFs(), path, data, 0o644); err != nil {
		return err
	}
	log.Printf("%s: wrote %d bytes\n", path, len(data))
	return nil
}
