package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolmenu/internal/types"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSettingsFileAdapterLoad(t *testing.T) {
	path := writeSettingsFile(t, `
districtId: "1212122355243477"
schoolId: 894
menuName: Lunch Elementary Schools
numDays: 2
showDate: true
fontSize: large
primaryColor: "#112233"
customTitle:
`)
	settings, err := NewSettingsFileAdapter().LoadSettings(path)
	require.NoError(t, err)

	want := map[string]string{
		"districtId":   "1212122355243477",
		"schoolId":     "894",
		"menuName":     "Lunch Elementary Schools",
		"numDays":      "2",
		"showDate":     "true",
		"fontSize":     "large",
		"primaryColor": "#112233",
	}
	if diff := cmp.Diff(want, settings); diff != "" {
		t.Fatalf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestSettingsFileAdapterKeepsSourceText(t *testing.T) {
	path := writeSettingsFile(t, "schoolId: 0123\ndistrictId: 00894\nbig: 123456789012345678901\nratio: 1.50\nflag: yes\n")
	settings, err := NewSettingsFileAdapter().LoadSettings(path)
	require.NoError(t, err)

	want := map[string]string{
		"schoolId":   "0123",
		"districtId": "00894",
		"big":        "123456789012345678901",
		"ratio":      "1.50",
		"flag":       "yes",
	}
	if diff := cmp.Diff(want, settings); diff != "" {
		t.Fatalf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestSettingsFileAdapterJSON(t *testing.T) {
	path := writeSettingsFile(t, `{"schoolId": "894", "menuName": "Lunch", "numDays": "abc"}`)
	settings, err := NewSettingsFileAdapter().LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", settings["numDays"])
}

func TestSettingsFileAdapterErrors(t *testing.T) {
	adapter := NewSettingsFileAdapter()

	_, err := adapter.LoadSettings("")
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindConfig, types.KindOf(err))

	_, err = adapter.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = adapter.LoadSettings(writeSettingsFile(t, "schoolId: [1, 2"))
	require.Error(t, err)

	_, err = adapter.LoadSettings(writeSettingsFile(t, "schoolId:\n  nested: true\n"))
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindConfig, types.KindOf(err))

	_, err = adapter.LoadSettings(writeSettingsFile(t, "schoolId:\n  - 894\n"))
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindConfig, types.KindOf(err))
}
