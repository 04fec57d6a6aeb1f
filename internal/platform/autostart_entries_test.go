package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryName(t *testing.T) {
	assert.Equal(t, "pomobar", entryName("Pomobar"))
	assert.Equal(t, "my-timer", entryName(" My  Timer "))
	assert.Equal(t, "pomobar", entryName("  "))
}

func TestNewLoginItem_Validation(t *testing.T) {
	_, err := newLoginItem(" ", "/usr/bin/pomobar", true)
	assert.ErrorIs(t, err, errEmptyAppName)

	_, err = newLoginItem("Pomobar", "", true)
	assert.ErrorIs(t, err, errEmptyExecPath)

	item, err := newLoginItem("My Timer", "", false)
	require.NoError(t, err)
	assert.Equal(t, "my-timer", item.Name)
	assert.Equal(t, "My Timer", item.DisplayName)
}

func TestDesktopEntry_QuotesPathsWithSpaces(t *testing.T) {
	item, err := newLoginItem("Pomobar", "/opt/my apps/pomobar", true)
	require.NoError(t, err)

	entry := item.desktopEntry()

	assert.Equal(t, "pomobar.desktop", item.desktopFileName())
	assert.Contains(t, entry, "[Desktop Entry]\n")
	assert.Contains(t, entry, "Name=Pomobar\n")
	assert.Contains(t, entry, "Exec=\"/opt/my apps/pomobar\"\n")
	assert.Contains(t, entry, "X-GNOME-Autostart-enabled=true\n")
}

func TestLaunchAgentPlist(t *testing.T) {
	item, err := newLoginItem("My Timer", "/Applications/Pomo & Bar.app/Contents/MacOS/pomobar", true)
	require.NoError(t, err)

	plist := item.launchAgentPlist()

	assert.Equal(t, "com.pomobar.my-timer", item.launchAgentLabel())
	assert.Equal(t, "com.pomobar.my-timer.plist", item.launchAgentFileName())
	assert.Contains(t, plist, "<string>com.pomobar.my-timer</string>")
	assert.Contains(t, plist, "<string>/Applications/Pomo &amp; Bar.app/Contents/MacOS/pomobar</string>")
	assert.Contains(t, plist, "<key>RunAtLoad</key>\n\t<true/>")
	assert.NotContains(t, plist, "Pomo & Bar")
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;&apos;", xmlEscape(`<a href="x">&'`))
}

func TestQuoteWindowsPath(t *testing.T) {
	assert.Equal(t, `"C:\Program Files\Pomobar\pomobar.exe"`, quoteWindowsPath(`C:\Program Files\Pomobar\pomobar.exe`))
	assert.Equal(t, `"C:\pomobar.exe"`, quoteWindowsPath(`"C:\pomobar.exe"`))
}

func TestRegistryArgs_UseNormalizedName(t *testing.T) {
	item, err := newLoginItem("My Timer", `C:\Program Files\Pomobar\pomobar.exe`, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"add", registryRunKey, "/v", "my-timer", "/t", "REG_SZ",
		"/d", `"C:\Program Files\Pomobar\pomobar.exe"`, "/f",
	}, item.registryAddArgs())
	assert.Equal(t, []string{"delete", registryRunKey, "/v", "my-timer", "/f"}, item.registryDeleteArgs())
}
