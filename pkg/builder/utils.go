package builder

import (
	"encoding/json"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/containertools/dfm/pkg/cmd"
)

type DockerInspect []struct {
	Id     string `json:"Id"`
	Size   uint64 `json:"Size"`
	Config struct {
		Env        []string            `json:"Env"`
		Cmd        []string            `json:"Cmd"`
		Volumes    map[string]struct{} `json:"Volumes"`
		WorkingDir string              `json:"WorkingDir"`
		Entrypoint []string            `json:"Entrypoint"`
		Labels     map[string]string   `json:"Labels"`
	} `json:"Config"`
}

func InspectImage(image string) (DockerInspect, error) {
	out, err := cmd.New("docker").Arg("inspect").Arg("--format").Arg("json").Arg(image).Output()
	if err != nil {
		return nil, err
	}
	var inspect DockerInspect

	log.Trace().Interface("output", out).Msg("Inspect output")

	if err := json.Unmarshal([]byte(out), &inspect); err != nil {
		log.Error().Err(err).Msg("Error parsing JSON.")
		return nil, err
	}

	return inspect, nil
}

// labelsToArgs emits labels in sorted key order so the generated command
// line is stable between runs.
func labelsToArgs(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := []string{}
	for _, k := range keys {
		args = append(args, "--label", k+"="+labels[k])
	}
	return args
}
