package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"schoolmenu/internal/adapters"
	"schoolmenu/internal/policies"
	"schoolmenu/internal/ports"
	"schoolmenu/internal/types"
)

const (
	DefaultTemplateID = "menu.html"
	DefaultStyleID    = "menu.css"
)

// Service wires the pipeline to its ports. MenuSource, Renderer and Device
// are optional: when nil they are built per request from the request's
// source, output and device options.
type Service struct {
	SettingsSource ports.SettingsSourcePort
	MenuSource     ports.MenuSourcePort
	Renderer       ports.RendererPort
	Device         ports.DeviceConfigPort
	TemplateID     string
	StyleID        string
	Clock          func() time.Time
}

func NewService() Service {
	return Service{
		SettingsSource: adapters.NewSettingsFileAdapter(),
		TemplateID:     DefaultTemplateID,
		StyleID:        DefaultStyleID,
		Clock:          time.Now,
	}
}

func (s Service) menuSource(opts SourceOptions) ports.MenuSourcePort {
	if s.MenuSource != nil {
		return s.MenuSource
	}
	client := adapters.NewGraphQLClient(opts.Endpoint, opts.TimeoutSec)
	return adapters.NewMenuSourceGraphQLAdapter(client)
}

func (s Service) renderer(outputDir string) ports.RendererPort {
	if s.Renderer != nil {
		return s.Renderer
	}
	return adapters.NewRenderParamsFileAdapter(outputDir)
}

func (s Service) device(opts DeviceOptions) ports.DeviceConfigPort {
	if s.Device != nil {
		return s.Device
	}
	return adapters.NewDeviceConfigAdapter(opts.Width, opts.Height, opts.Orientation)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

func itemFilter(extra []string) ports.ItemFilterPort {
	return policies.NewItemFilterPolicy(extra)
}

func publishLocation(value string) types.PublishLocation {
	if value == "" {
		return types.PublishLocationWebsite
	}
	return types.PublishLocation(value)
}

// withRequestID attaches a logger carrying a fresh request id to ctx.
func withRequestID(ctx context.Context) (context.Context, string) {
	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Logger()
	return logger.WithContext(ctx), requestID
}
