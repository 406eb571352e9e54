package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"schoolmenu/internal/types"
)

// SettingsFileAdapter reads the plugin settings store: a flat YAML (or
// JSON) mapping whose scalar values are exposed as strings.
type SettingsFileAdapter struct{}

func NewSettingsFileAdapter() SettingsFileAdapter {
	return SettingsFileAdapter{}
}

func (a SettingsFileAdapter) LoadSettings(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, types.NewConfigError("settings file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("settings file not found").
			WithCause(err)
	}
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse settings yaml").
			WithCause(err)
	}
	settings := make(map[string]string, len(raw))
	for key, node := range raw {
		text, ok, err := scalarText(key, &node)
		if err != nil {
			return nil, err
		}
		if ok {
			settings[key] = text
		}
	}
	return settings, nil
}

// scalarText returns the source text of a scalar node so ids like 0123
// are not reinterpreted as numbers. Null scalars are reported as absent.
func scalarText(key string, node *yaml.Node) (string, bool, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return "", false, types.NewConfigError(fmt.Sprintf("setting %s must be a scalar value", key))
	}
	if node.ShortTag() == "!!null" {
		return "", false, nil
	}
	return node.Value, true, nil
}
