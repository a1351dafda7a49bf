package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/containertools/dfm/pkg/builder"
	"github.com/containertools/dfm/pkg/config"
	"github.com/containertools/dfm/pkg/generator"
	"github.com/containertools/dfm/pkg/lock"
	"github.com/containertools/dfm/pkg/util"
	"github.com/containertools/dfm/pkg/version"
)

var BuildVersion string // Will be set dynamically at build time.
var appName string = "dfm"
var flags config.Flags

var cmd = &cobra.Command{
	Use:   appName,
	Short: "Generates Dockerfiles from a template for a matrix of OS and architecture pairs and builds them.",
	Long: `A CLI tool that renders one Dockerfile per (OS, architecture) pair of a
build matrix and drives 'docker build' and 'docker tag' over the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogger(flags.Verbose, flags.NoColor)

		// If version flag is provided, show the version and exit.
		if flags.PrintVersion {
			fmt.Printf("%s version: %s\n", appName, BuildVersion)
			return
		}

		// Resolve values through viper so DFM_* environment variables can
		// override flag defaults (explicit flags still win).
		flags.ConfigFile = viper.GetString("config")
		flags.OS = viper.GetStringSlice("os")
		flags.Arch = viper.GetStringSlice("arch")
		flags.HubTag = viper.GetString("hub-tag")
		flags.NoBuild = viper.GetBool("no-build")
		flags.NoGenerate = viper.GetBool("no-generate")
		flags.NoCache = viper.GetBool("no-cache")
		flags.Delete = viper.GetBool("delete")
		flags.DryRun = viper.GetBool("dry-run")
		flags.Time = viper.GetBool("time")

		if flags.Verbose {
			log.Debug().Msg("Verbose mode enabled.")
		}
		if flags.DryRun {
			log.Info().Msg("Dry run enabled - no actions will be executed.")
		}
		if flags.HubTag != "" {
			log.Info().Str("hub-tag", flags.HubTag).Msg("Built images will additionally be tagged as")
		}

		ctx := context.Background()

		log.Info().Str("config", flags.ConfigFile).Msg("Loading")
		cfg, err := config.Load(flags.ConfigFile)
		util.FailOnError(err, "Error loading config")
		log.Debug().Interface("config", cfg).Msg("Loaded")

		workdir := filepath.Dir(flags.ConfigFile)

		ver, err := version.Read(filepath.Join(workdir, cfg.VersionFile))
		util.FailOnError(err, "Error reading version")
		log.Info().Str("version", ver).Msg("Building for")

		// one run at a time per workspace
		lk := lock.New(filepath.Join(workdir, "."+appName+".lock"))
		util.FailOnError(lk.Lock(ctx), "Another run is already active in this workspace")
		defer func() {
			util.WarnOnError(lk.Unlock(), "Failed to release workspace lock")
		}()

		generated, err := generator.Run(workdir, cfg, ver, &flags)
		util.FailOnError(err, "Error generating Dockerfiles")
		if flags.Delete && len(generated) > 0 {
			log.Info().Msg("Templated Dockerfiles will be deleted at end")
			defer util.RemoveFile(generated...)
		}

		buildEngine := builder.New(cfg, ver, &flags)
		util.FailOnError(buildEngine.Init(), "Failed to initialize builder.")
		for _, pair := range cfg.Pairs(flags.OS, flags.Arch) {
			buildEngine.Queue(filepath.Join(workdir, generator.FileName(pair.OS, pair.Spec.Arch)), pair)
		}
		util.FailOnError(buildEngine.Run(ctx, builder.Build), "Building failed with error, check error above. Exiting.")
		util.FailOnError(buildEngine.Run(ctx, builder.Tag), "Tagging failed with error, check error above. Exiting.")
		util.FailOnError(buildEngine.Terminate(), "Failed to shutdown builder.")
	},
}

func init() {
	if BuildVersion == "" {
		BuildVersion = "development" // Fallback if not set during build
	}

	cmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "matrix.yaml", "Path to the matrix configuration file")

	cmd.Flags().StringSliceVar(&flags.OS, "os", nil, "OS names to process, defaults to all configured")
	cmd.Flags().StringSliceVar(&flags.Arch, "arch", nil, "Architectures to process, defaults to all configured")
	cmd.Flags().StringVar(&flags.HubTag, "hub-tag", "", "Additional tag to apply to every built image")
	cmd.Flags().BoolVar(&flags.NoBuild, "no-build", false, "Skip building the docker images")
	cmd.Flags().BoolVar(&flags.NoGenerate, "no-generate", false, "Skip generating Dockerfiles from the template")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Build without using any cache data")
	cmd.Flags().BoolVarP(&flags.Delete, "delete", "d", false, "Delete generated Dockerfiles after successful building")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print actions but don't execute them")
	cmd.Flags().BoolVarP(&flags.Time, "time", "t", false, "Report build times and image sizes")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Increase verbosity of output")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&flags.PrintVersion, "version", "V", false, "Display the application version and exit")

	cmd.MarkFlagsMutuallyExclusive("no-build", "no-generate")

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(cmd.Flags())
	_ = viper.BindPFlags(cmd.PersistentFlags())
}

func main() {
	if err := cmd.Execute(); err != nil {
		util.FailOnError(err)
	}
}

func initLogger(verbose bool, noColor bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: noColor,
	})
}
