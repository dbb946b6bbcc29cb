package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the OS-specific config directory for resolvctl.
// Linux: $XDG_CONFIG_HOME/resolvctl  macOS: ~/Library/Application Support/resolvctl
// Windows: %AppData%/resolvctl
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, "resolvctl"), nil
}
