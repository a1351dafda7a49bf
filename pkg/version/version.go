package version

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Read loads the image version string from the given file. The CI release
// branch prefix "release/" is rewritten to "release-" as slashes are not
// allowed in docker tags.
func Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading version file %s", path)
	}
	v := strings.TrimSpace(string(raw))
	if v == "" {
		return "", errors.Errorf("version file %s is empty", path)
	}
	return strings.ReplaceAll(v, "release/", "release-"), nil
}
