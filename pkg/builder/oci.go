package builder

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	git "github.com/go-git/go-git/v5"
)

// Follow:
// https://github.com/opencontainers/image-spec/blob/main/annotations.md
func OCILabels(maintainer, version string) map[string]string {
	labels := map[string]string{}

	if maintainer != "" {
		labels["maintainer"] = maintainer
		labels["org.opencontainers.image.authors"] = maintainer
	}

	if version != "" {
		labels["org.opencontainers.image.version"] = version
	}

	timestamp := time.Now().Format(time.RFC3339)
	labels["org.opencontainers.image.created"] = timestamp

	originUrl, hexsha, branch, err := readGitRepo(".")
	if err != nil {
		log.Warn().Err(err).Msg("Not being able to read git repo metadata, or not a git repo. Skipping.")
	} else {
		if originUrl != "" {
			labels["org.opencontainers.image.source"] = originUrl
		}
		if hexsha != "" {
			labels["org.opencontainers.image.revision"] = hexsha
		}
		if branch != "" {
			labels["org.opencontainers.image.branch"] = branch
		}
	}

	log.Debug().Interface("labels", labels).Msg("Adding OCI")
	return labels
}

func readGitRepo(path string) (originURL string, commitHex string, branchName string, err error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		if err == git.ErrRepositoryNotExists {
			// Not a git repository, nothing to report
			return "", "", "", nil
		}
		return "", "", "", fmt.Errorf("failed to open repository: %w", err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", "", "", fmt.Errorf("failed to list remotes: %w", err)
	}

	for _, remote := range remotes {
		if remote.Config().Name == "origin" {
			if len(remote.Config().URLs) > 0 {
				originURL = remote.Config().URLs[0]
			}
			break
		}
	}

	head, err := repo.Head()
	if err != nil {
		return originURL, "", "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	commitHex = head.Hash().String()

	if head.Name().IsBranch() {
		branchName = head.Name().Short()
	} else {
		branchName = "" // Detached HEAD state
	}

	return originURL, commitHex, branchName, nil
}
