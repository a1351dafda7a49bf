package generator

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/containertools/dfm/pkg/config"
)

// FileName returns the output name for one matrix cell, one file per
// (OS, architecture) pair.
func FileName(osName, arch string) string {
	return fmt.Sprintf("Dockerfile_%s_%s", osName, arch)
}

// Run renders the Dockerfile template once per selected (OS, architecture)
// pair into workdir and returns the generated file paths. The whole phase
// is suppressed by --no-generate.
func Run(workdir string, cfg *config.Config, version string, flags *config.Flags) ([]string, error) {
	if flags.NoGenerate {
		log.Info().Msg("Skipping Dockerfile generation")
		return nil, nil
	}

	templateFile := filepath.Join(workdir, cfg.Template)
	log.Debug().Str("template", templateFile).Msg("Processing")

	var generated []string
	for _, pair := range cfg.Pairs(flags.OS, flags.Arch) {
		data := mergeVars(cfg, pair, version)
		dockerfile := filepath.Join(workdir, FileName(pair.OS, pair.Spec.Arch))

		if flags.DryRun {
			log.Info().Str("dockerfile", dockerfile).Msg("DRY-RUN: Would generate")
			continue
		}

		log.Info().Str("os", pair.OS).Str("arch", pair.Spec.Arch).Str("dockerfile", dockerfile).Msg("Generating")
		log.Debug().Interface("vars", data).Msg("Templating with")
		if err := TemplateFile(templateFile, dockerfile, data); err != nil {
			return generated, err
		}
		generated = append(generated, dockerfile)
	}
	return generated, nil
}

// mergeVars builds the template data set for one pair. Later sources win:
// global vars, per-OS vars, then the matrix cell itself.
func mergeVars(cfg *config.Config, pair config.Pair, version string) map[string]interface{} {
	data := map[string]interface{}{}
	for k, v := range cfg.Vars {
		data[k] = v
	}
	for k, v := range cfg.OS[pair.OS].Vars {
		data[k] = v
	}
	data["repo"] = cfg.Repo
	data["maintainer"] = cfg.Maintainer
	data["version"] = version
	data["os"] = pair.OS
	data["base"] = pair.Spec.Base
	data["arch"] = pair.Spec.Arch
	data["alt_arch"] = pair.Spec.AltArch
	return data
}
