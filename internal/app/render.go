package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schoolmenu/internal/core"
	"schoolmenu/internal/types"
)

const (
	isoDateLayout    = "2006-01-02"
	dayNameLayout    = "Monday"
	shortDateLayout  = "Jan 02"
	singleDateLayout = "Monday, January 02"
	timestampLayout  = "2006-01-02 15:04"
)

// Render runs the whole pipeline for one request. It is the only place
// pipeline errors are caught: a failed fetch is logged and rendered as a
// degraded menu. Settings errors and renderer failures are returned.
func (s Service) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	ctx, requestID := withRequestID(ctx)

	raw, err := s.loadRawSettings(req)
	if err != nil {
		return RenderResult{}, err
	}
	settings, err := core.ParseSettings(raw)
	if err != nil {
		return RenderResult{}, err
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if s.Renderer == nil && outputDir == "" {
		return RenderResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	now := s.now()
	fetcher := core.NewMenuFetcher(s.menuSource(req.Source), itemFilter(req.FilterItems), s.now)
	fetchOK := true
	menu, err := fetcher.Fetch(ctx, core.FetchRequest{
		Identity:        settings.Identity(),
		PublishLocation: publishLocation(req.Source.PublishLocation),
	})
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("kind", string(types.KindOf(err))).
			Str("school_id", settings.SchoolID).
			Str("menu_name", settings.MenuName).
			Msg("menu fetch failed, rendering placeholder")
		menu = core.DegradedMenu(now)
		fetchOK = false
	}

	window := core.ProjectWindow(now, core.NextSchoolDays(now, settings.Days), menu, fetchOK)
	params := BuildRenderParams(raw, settings, window, now, fetchOK)

	device := s.device(req.Device)
	dims := device.Resolution()
	if types.Orientation(device.Config("orientation")) == types.OrientationVertical {
		dims = dims.Swapped()
	}

	image, err := s.renderer(outputDir).Render(ctx, dims, s.templateID(), s.styleID(), params)
	if err != nil {
		return RenderResult{}, err
	}
	if len(image) == 0 {
		return RenderResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render menu image")
	}

	log.Ctx(ctx).Info().
		Int("days", len(window.Days)).
		Bool("fetch_ok", fetchOK).
		Int("width", dims.Width).
		Int("height", dims.Height).
		Msg("menu rendered")

	return RenderResult{
		RequestID:  requestID,
		Settings:   settings,
		Menu:       menu,
		FetchOK:    fetchOK,
		Window:     window,
		Params:     params,
		Dimensions: dims,
		Image:      image,
	}, nil
}

func (s Service) loadRawSettings(req RenderRequest) (map[string]string, error) {
	raw := map[string]string{}
	if path := strings.TrimSpace(req.SettingsPath); path != "" {
		if s.SettingsSource == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("settings source is not configured")
		}
		loaded, err := s.SettingsSource.LoadSettings(path)
		if err != nil {
			return nil, err
		}
		for key, value := range loaded {
			raw[key] = value
		}
	}
	for key, value := range req.Overrides {
		if strings.TrimSpace(value) == "" {
			continue
		}
		raw[key] = value
	}
	return raw, nil
}

func (s Service) templateID() string {
	if s.TemplateID == "" {
		return DefaultTemplateID
	}
	return s.TemplateID
}

func (s Service) styleID() string {
	if s.StyleID == "" {
		return DefaultStyleID
	}
	return s.StyleID
}

// BuildRenderParams assembles the renderer document from the projected
// window. raw is echoed as plugin_settings with the display fields
// normalized.
func BuildRenderParams(raw map[string]string, settings types.Settings, window types.MenuWindow, now time.Time, fetchOK bool) types.RenderParams {
	pluginSettings := make(map[string]string, len(raw)+5)
	for key, value := range raw {
		pluginSettings[key] = value
	}
	pluginSettings["customTitle"] = settings.MenuName
	pluginSettings["showDate"] = boolText(settings.ShowDate)
	pluginSettings["primaryColor"] = settings.PrimaryColor
	pluginSettings["textColor"] = settings.TextColor
	pluginSettings["backgroundColor"] = settings.BackgroundColor

	params := types.RenderParams{
		PluginSettings:  pluginSettings,
		Dates:           window.ISODates(),
		MenuData:        window.Items(),
		DayStates:       make(map[string]types.DayState, len(window.Days)),
		DayNames:        make(map[string]string, len(window.Days)),
		FormattedDates:  make(map[string]string, len(window.Days)),
		TodayStr:        now.Format(isoDateLayout),
		Timestamp:       now.Format(timestampLayout),
		Title:           settings.Title,
		ShowDate:        settings.ShowDate,
		ShowTimestamp:   settings.ShowTimestamp,
		FontScale:       settings.FontScale,
		PrimaryColor:    settings.PrimaryColor,
		TextColor:       settings.TextColor,
		BackgroundColor: settings.BackgroundColor,
	}
	for _, day := range window.Days {
		params.DayStates[day.ISO] = day.State
		params.DayNames[day.ISO] = day.Date.Format(dayNameLayout)
		params.FormattedDates[day.ISO] = day.Date.Format(shortDateLayout)
	}
	if len(window.Days) == 1 {
		params.SingleDateText = window.Days[0].Date.Format(singleDateLayout)
	}
	if !fetchOK {
		params.Notice = core.MenuNotAvailableText
	}
	return params
}

func boolText(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
