package config

import (
	"os"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config is the build matrix: which base image to use for every
// (OS, architecture) pair, plus the variables fed into the template.
// It is loaded once at startup and never mutated afterwards.
type Config struct {
	Repo        string              `yaml:"repo"`
	Registry    string              `yaml:"registry"`
	Maintainer  string              `yaml:"maintainer"`
	Template    string              `yaml:"template"`
	VersionFile string              `yaml:"version_file"`
	Vars        map[string]string   `yaml:"vars"`
	OS          map[string]OSConfig `yaml:"os"`
}

type OSConfig struct {
	Vars   map[string]string `yaml:"vars"`
	Images []ArchSpec        `yaml:"images"`
}

// ArchSpec describes one architecture variant of an OS. AltArch is the
// secondary architecture name some upstream artifacts use (e.g. "aarch64"
// for arm64); it defaults to Arch.
type ArchSpec struct {
	Base    string `yaml:"base"`
	Arch    string `yaml:"arch"`
	AltArch string `yaml:"alt_arch"`
}

// Pair is one selected cell of the matrix.
type Pair struct {
	OS   string
	Spec ArchSpec
}

// Load reads the matrix configuration from filename. When the file does
// not exist the built-in default matrix is used instead.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("config", filename).Msg("No matrix file found, using built-in defaults")
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "opening config %s", filename)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		log.Error().Err(err).Msg("Decoding YAML " + filename + " failed! Check syntax and try again")
		return nil, errors.Wrapf(err, "decoding config %s", filename)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.VersionFile == "" {
		c.VersionFile = DefaultVersionFile
	}
	for name, osCfg := range c.OS {
		for i, spec := range osCfg.Images {
			if spec.AltArch == "" {
				osCfg.Images[i].AltArch = spec.Arch
			}
		}
		c.OS[name] = osCfg
	}
}

func (c *Config) validate() error {
	if c.Repo == "" {
		return errors.New("config: 'repo' is required")
	}
	if len(c.OS) == 0 {
		return errors.New("config: at least one OS must be defined under 'os'")
	}
	for name, osCfg := range c.OS {
		if len(osCfg.Images) == 0 {
			return errors.Errorf("config: OS %q has no 'images' defined", name)
		}
		for _, spec := range osCfg.Images {
			if spec.Base == "" || spec.Arch == "" {
				return errors.Errorf("config: OS %q has an image record without 'base' or 'arch'", name)
			}
		}
	}
	return nil
}

// OSNames returns the configured OS names in stable order.
func (c *Config) OSNames() []string {
	names := make([]string, 0, len(c.OS))
	for name := range c.OS {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pairs returns the (OS, architecture) cross-product restricted to the
// given filters. Empty filters select everything. Filter entries that
// match nothing in the matrix are reported but not fatal.
func (c *Config) Pairs(osFilter, archFilter []string) []Pair {
	var pairs []Pair
	matchedOS := map[string]bool{}
	matchedArch := map[string]bool{}

	for _, name := range c.OSNames() {
		if len(osFilter) > 0 && !slices.Contains(osFilter, name) {
			continue
		}
		matchedOS[name] = true
		for _, spec := range c.OS[name].Images {
			if len(archFilter) > 0 && !slices.Contains(archFilter, spec.Arch) {
				continue
			}
			matchedArch[spec.Arch] = true
			pairs = append(pairs, Pair{OS: name, Spec: spec})
		}
	}

	for _, name := range osFilter {
		if !matchedOS[name] {
			log.Warn().Str("os", name).Msg("Selected OS not present in the matrix")
		}
	}
	for _, arch := range archFilter {
		if !matchedArch[arch] {
			log.Warn().Str("arch", arch).Msg("Selected architecture not present in the matrix")
		}
	}
	return pairs
}
