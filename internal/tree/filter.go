package tree

import "strings"

var (
	excludedNames      = []string{".gitkeep", "README.md", "LICENSE", "tag.txt"}
	excludedExtensions = []string{".toml"}
	excludedPrefixes   = []string{".github/"}
)

// ShouldInclude reports whether a repository-relative path belongs in the
// download tree. Housekeeping files, project config files and CI directories
// are left out.
func ShouldInclude(path string) bool {
	name := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		name = path[idx+1:]
	}

	for _, excluded := range excludedNames {
		if name == excluded {
			return false
		}
	}

	for _, ext := range excludedExtensions {
		if strings.HasSuffix(name, ext) {
			return false
		}
	}

	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	return true
}
