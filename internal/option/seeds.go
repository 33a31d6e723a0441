package option

import (
	"os"
	"os/user"
	"path/filepath"
)

// Seeds returns the conventional interpolation seed variables derived
// from the build root: buildroot, workdir, distdir, homedir, and user.
// Callers may add or override entries before parsing.
func Seeds(buildRoot string) map[string]string {
	seeds := map[string]string{
		"buildroot": buildRoot,
		"workdir":   filepath.Join(buildRoot, ".optcore.d"),
		"distdir":   filepath.Join(buildRoot, "dist"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		seeds["homedir"] = home
	}
	if u, err := user.Current(); err == nil {
		seeds["user"] = u.Username
	} else if name := os.Getenv("USER"); name != "" {
		seeds["user"] = name
	}
	return seeds
}
