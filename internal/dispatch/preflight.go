package dispatch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Preflight checks that every bare program name the command lines use is on
// PATH before any of them runs. Programs given as a path are not checked: an
// earlier task may be the one that builds them.
func Preflight(lines []string, env *Environment) error {
	needed := make(map[string]bool)
	for _, line := range lines {
		words, err := Split(line, env)
		if err != nil {
			return err
		}
		if len(words) > 0 {
			needed[words[0]] = true
		}
	}

	var missing []string
	for bin := range needed {
		if strings.ContainsRune(bin, filepath.Separator) {
			continue
		}
		if _, err := exec.LookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("required binaries not found: %s", strings.Join(missing, ", "))
	}
	return nil
}
