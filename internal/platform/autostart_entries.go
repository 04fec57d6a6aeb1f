package platform

import (
	"fmt"
	"strings"
)

const (
	launchAgentPrefix = "com.pomobar."
	registryRunKey    = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`
)

// Linux: XDG autostart desktop entry.

func (item loginItem) desktopFileName() string {
	return item.Name + ".desktop"
}

func (item loginItem) desktopEntry() string {
	var entry strings.Builder
	entry.WriteString("[Desktop Entry]\n")
	entry.WriteString("Type=Application\n")
	fmt.Fprintf(&entry, "Name=%s\n", item.DisplayName)
	entry.WriteString("Comment=Pomodoro countdown in the system tray\n")
	fmt.Fprintf(&entry, "Exec=%s\n", quoteIfSpaced(item.ExecPath))
	entry.WriteString("Terminal=false\n")
	entry.WriteString("X-GNOME-Autostart-enabled=true\n")
	return entry.String()
}

func quoteIfSpaced(execPath string) string {
	if strings.Contains(execPath, " ") && !strings.HasPrefix(execPath, `"`) {
		return `"` + execPath + `"`
	}
	return execPath
}

// macOS: per-user LaunchAgent.

func (item loginItem) launchAgentLabel() string {
	return launchAgentPrefix + item.Name
}

func (item loginItem) launchAgentFileName() string {
	return item.launchAgentLabel() + ".plist"
}

func (item loginItem) launchAgentPlist() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>ProcessType</key>
	<string>Interactive</string>
	<key>LimitLoadToSessionType</key>
	<string>Aqua</string>
</dict>
</plist>
`, xmlEscape(item.launchAgentLabel()), xmlEscape(item.ExecPath))
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(value string) string {
	return xmlReplacer.Replace(value)
}

// Windows: value under the current user's Run key, written with reg.exe.

func (item loginItem) registryAddArgs() []string {
	return []string{"add", registryRunKey, "/v", item.Name, "/t", "REG_SZ", "/d", quoteWindowsPath(item.ExecPath), "/f"}
}

func (item loginItem) registryDeleteArgs() []string {
	return []string{"delete", registryRunKey, "/v", item.Name, "/f"}
}

func quoteWindowsPath(execPath string) string {
	return `"` + strings.Trim(execPath, `"`) + `"`
}
