package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const defaultEntryName = "pomobar"

var (
	errEmptyAppName  = errors.New("app name is empty")
	errEmptyExecPath = errors.New("exec path is empty")
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// ApplyAutostart registers or removes the login item for the running executable.
func ApplyAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

// loginItem is the OS-neutral description of a launch-at-login entry.
type loginItem struct {
	DisplayName string
	Name        string
	ExecPath    string
}

func newLoginItem(appName, execPath string, needExec bool) (loginItem, error) {
	if strings.TrimSpace(appName) == "" {
		return loginItem{}, errEmptyAppName
	}
	if needExec && strings.TrimSpace(execPath) == "" {
		return loginItem{}, errEmptyExecPath
	}
	return loginItem{
		DisplayName: strings.TrimSpace(appName),
		Name:        entryName(appName),
		ExecPath:    execPath,
	}, nil
}

// entryName turns an app name into a lower-case, dash-separated file stem.
// Every platform names its login entry with it.
func entryName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		return defaultEntryName
	}
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
