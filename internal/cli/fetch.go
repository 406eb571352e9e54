package cli

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"schoolmenu/internal/app"
)

type fetchOptions struct {
	DistrictID string
	SchoolID   string
	MenuName   string
}

func newFetchCommand() *cobra.Command {
	opts := fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the resolved, filtered menu as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DistrictID, "district-id", "", "District organization id (optional)")
	cmd.Flags().StringVar(&opts.SchoolID, "school-id", "", "School site id")
	cmd.Flags().StringVar(&opts.MenuName, "menu-name", "", "Menu name as published by the provider")
	return cmd
}

func runFetch(ctx context.Context, cmd *cobra.Command, opts fetchOptions) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Fetch(ctx, app.FetchRequest{
		DistrictID:  opts.DistrictID,
		SiteID:      opts.SchoolID,
		MenuName:    opts.MenuName,
		Source:      sourceOptions(cmd),
		FilterItems: filterItems(cmd),
	})
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	defer encoder.Close()
	if err := encoder.Encode(result.Menu); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode menu").
			WithCause(err)
	}
	return nil
}
