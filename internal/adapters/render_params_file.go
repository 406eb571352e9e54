package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"schoolmenu/internal/types"
)

// RenderParamsFileAdapter hands the render job to an out-of-process
// renderer: it writes the template ids, target dimensions and parameters
// as one YAML document and returns that document.
type RenderParamsFileAdapter struct {
	Dir string
}

type renderJob struct {
	Template   string             `yaml:"template"`
	Style      string             `yaml:"style"`
	Dimensions types.Dimensions   `yaml:"dimensions"`
	Params     types.RenderParams `yaml:"params"`
}

func NewRenderParamsFileAdapter(dir string) RenderParamsFileAdapter {
	return RenderParamsFileAdapter{Dir: dir}
}

func (a RenderParamsFileAdapter) Render(ctx context.Context, dims types.Dimensions, templateID string, styleID string, params types.RenderParams) ([]byte, error) {
	if strings.TrimSpace(templateID) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template id is required")
	}
	data, err := yaml.Marshal(renderJob{
		Template:   templateID,
		Style:      styleID,
		Dimensions: dims,
		Params:     params,
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal render parameters").
			WithCause(err)
	}
	path, err := a.ensurePath(jobFileName(templateID))
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write render parameters").
			WithCause(err)
	}
	log.Ctx(ctx).Info().Str("path", path).Msg("render parameters written")
	return data, nil
}

func (a RenderParamsFileAdapter) Path(templateID string) string {
	return filepath.Join(a.Dir, jobFileName(templateID))
}

func (a RenderParamsFileAdapter) ensurePath(name string) (string, error) {
	if strings.TrimSpace(a.Dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}

func jobFileName(templateID string) string {
	base := filepath.Base(templateID)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".params.yaml"
}
