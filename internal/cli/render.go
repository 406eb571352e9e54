package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schoolmenu/internal/app"
)

type renderOptions struct {
	Settings     string
	Output       string
	DistrictID   string
	SchoolID     string
	MenuName     string
	Days         string
	Title        string
	DeviceWidth  int
	DeviceHeight int
	Orientation  string
}

func newRenderCommand() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resolve the menu and write the render parameter document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Settings, "settings", "", "Plugin settings file (YAML)")
	cmd.Flags().StringVar(&opts.Output, "output", "out", "Output directory for the render document")
	cmd.Flags().StringVar(&opts.DistrictID, "district-id", "", "District organization id (optional)")
	cmd.Flags().StringVar(&opts.SchoolID, "school-id", "", "School site id")
	cmd.Flags().StringVar(&opts.MenuName, "menu-name", "", "Menu name as published by the provider")
	cmd.Flags().StringVar(&opts.Days, "days", "", "Number of school days to show (1-5)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Custom title")
	cmd.Flags().IntVar(&opts.DeviceWidth, "device-width", 800, "Display width in pixels")
	cmd.Flags().IntVar(&opts.DeviceHeight, "device-height", 480, "Display height in pixels")
	cmd.Flags().StringVar(&opts.Orientation, "orientation", "horizontal", "Display orientation (horizontal, vertical)")
	_ = viper.BindPFlag("settings", cmd.Flags().Lookup("settings"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("device_width", cmd.Flags().Lookup("device-width"))
	_ = viper.BindPFlag("device_height", cmd.Flags().Lookup("device-height"))
	_ = viper.BindPFlag("device_orientation", cmd.Flags().Lookup("orientation"))
	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, opts renderOptions) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Render(ctx, app.RenderRequest{
		SettingsPath: resolveString(cmd, opts.Settings, "settings", "settings"),
		Overrides:    renderOverrides(opts),
		Source:       sourceOptions(cmd),
		Device: app.DeviceOptions{
			Width:       resolveInt(cmd, opts.DeviceWidth, "device_width", "device-width"),
			Height:      resolveInt(cmd, opts.DeviceHeight, "device_height", "device-height"),
			Orientation: resolveString(cmd, opts.Orientation, "device_orientation", "orientation"),
		},
		FilterItems: filterItems(cmd),
		OutputDir:   resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rendered: %s (%dx%d)\n", result.Params.Title, result.Dimensions.Width, result.Dimensions.Height)
	for _, date := range result.Params.Dates {
		fmt.Fprintf(out, "%s %s [%s]: %s\n",
			date,
			result.Params.DayNames[date],
			result.Params.DayStates[date],
			strings.Join(result.Params.MenuData[date], ", "),
		)
	}
	return nil
}

// renderOverrides maps explicit flags onto raw settings keys.
func renderOverrides(opts renderOptions) map[string]string {
	return map[string]string{
		"districtId":  opts.DistrictID,
		"schoolId":    opts.SchoolID,
		"menuName":    opts.MenuName,
		"numDays":     opts.Days,
		"customTitle": opts.Title,
	}
}
