//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(appName, execPath string) error {
	item, err := newLoginItem(appName, execPath, true)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := runReg(item.registryAddArgs()); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	item, err := newLoginItem(appName, "", false)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := runReg(item.registryDeleteArgs()); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func runReg(args []string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
