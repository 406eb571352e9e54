package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"schoolmenu/internal/app"
)

func newMenuTypesCommand() *cobra.Command {
	var schoolID string
	cmd := &cobra.Command{
		Use:   "menu-types",
		Short: "List the menu names a school publishes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenuTypes(cmd.Context(), cmd, schoolID)
		},
	}
	cmd.Flags().StringVar(&schoolID, "school-id", "", "School site id")
	return cmd
}

func runMenuTypes(ctx context.Context, cmd *cobra.Command, schoolID string) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.MenuTypes(ctx, app.MenuTypesRequest{
		SiteID: schoolID,
		Source: sourceOptions(cmd),
	})
	if err != nil {
		return err
	}
	for _, menuType := range result.MenuTypes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", menuType.ID, menuType.Name)
	}
	return nil
}

func newSitesCommand() *cobra.Command {
	var districtID string
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List the schools of a district organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSites(cmd.Context(), cmd, districtID)
		},
	}
	cmd.Flags().StringVar(&districtID, "district-id", "", "District organization id")
	return cmd
}

func runSites(ctx context.Context, cmd *cobra.Command, districtID string) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Sites(ctx, app.SitesRequest{
		DistrictID: districtID,
		Source:     sourceOptions(cmd),
	})
	if err != nil {
		return err
	}
	for _, site := range result.Sites {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", site.ID, site.Name)
	}
	return nil
}
