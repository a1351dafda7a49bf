package builder

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/containertools/dfm/pkg/cmd"
	"github.com/containertools/dfm/pkg/config"
	"github.com/containertools/dfm/pkg/runner"
	"github.com/containertools/dfm/pkg/util"
)

// compile-time interface check.
var _ Builder = (*DockerBuilder)(nil)

// DockerBuilder drives the docker CLI: one `docker build` per matrix cell
// and, when --hub-tag is set, one `docker tag` per built image.
type DockerBuilder struct {
	buildTasks   *runner.Runner
	taggingTasks *runner.Runner

	flags     *config.Flags
	repo      string
	registry  string
	version   string
	labels    map[string]string
	builtTags []string
}

func New(cfg *config.Config, version string, flags *config.Flags) *DockerBuilder {
	return &DockerBuilder{
		flags:    flags,
		repo:     cfg.Repo,
		registry: cfg.Registry,
		version:  version,
		labels:   OCILabels(cfg.Maintainer, version),
	}
}

func (b *DockerBuilder) Init() error {
	b.buildTasks = runner.New().DryRun(b.flags.DryRun)
	b.taggingTasks = runner.New().DryRun(b.flags.DryRun)

	log.Info().Str("engine", "docker").Msg("Initializing")
	return nil
}

// RepoTag is the local tag a cell builds into: repo:version_os_arch.
func (b *DockerBuilder) RepoTag(pair config.Pair) string {
	return fmt.Sprintf("%s:%s_%s_%s", b.repo, b.version, pair.OS, pair.Spec.Arch)
}

func (b *DockerBuilder) Queue(dockerfile string, pair config.Pair) {
	repoTag := b.RepoTag(pair)

	cacheFrom := []string{repoTag}
	if b.registry != "" {
		cacheFrom = append([]string{path.Join(b.registry, repoTag)}, cacheFrom...)
	}

	build := cmd.New("docker").Arg("build")
	if b.flags.NoCache {
		build.Arg("--no-cache")
	}
	build.Arg("--pull").
		Arg("--cache-from", strings.Join(cacheFrom, ",")).
		Arg("-f", dockerfile).
		Arg("-t", repoTag).
		Arg(labelsToArgs(b.labels)...).
		Arg(".").
		PreInfo("Building " + repoTag).
		SetVerbose(b.flags.Verbose).
		SetTimed(b.flags.Time)
	b.buildTasks.AddTask(build)
	b.builtTags = append(b.builtTags, repoTag)

	if b.flags.HubTag != "" {
		tagger := cmd.New("docker").Arg("tag").
			Arg(repoTag).
			Arg(b.flags.HubTag).
			SetVerbose(b.flags.Verbose).
			PreInfo("Tagging " + repoTag + " into " + b.flags.HubTag)
		b.taggingTasks.AddUniq(tagger)
	}
}

func (b *DockerBuilder) Run(ctx context.Context, stage Stage) error {
	if b.flags.NoBuild {
		log.Info().Str("stage", stage.String()).Msg("Skipping Dockerfile building")
		return nil
	}
	log.Debug().Str("stage", stage.String()).Msg("Running stage")
	switch stage {
	case Build:
		if err := b.buildTasks.Run(ctx); err != nil {
			return err
		}
		if b.flags.Time && !b.flags.DryRun {
			b.reportSizes()
		}
		return nil
	case Tag:
		return b.taggingTasks.Run(ctx)
	default:
		return fmt.Errorf("unknown stage: %s", stage)
	}
}

func (b *DockerBuilder) Terminate() error {
	return nil
}

// QueuedBuilds exposes the collected build commands.
func (b *DockerBuilder) QueuedBuilds() []*cmd.Cmd {
	return b.buildTasks.Tasks()
}

// QueuedTags exposes the collected tag commands.
func (b *DockerBuilder) QueuedTags() []*cmd.Cmd {
	return b.taggingTasks.Tasks()
}

func (b *DockerBuilder) reportSizes() {
	for _, tag := range b.builtTags {
		inspect, err := InspectImage(tag)
		if err != nil {
			log.Warn().Err(err).Str("image", tag).Msg("Could not inspect")
			continue
		}
		if len(inspect) > 0 {
			log.Info().Str("image", tag).Str("size", util.ByteCountIEC(inspect[0].Size)).Msg("Built")
		}
	}
}
