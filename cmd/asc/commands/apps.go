package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// NewAppsCommand creates the apps command group.
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"app"},
		Short:   "Inspect apps",
		Long:    "List and inspect the apps of the team",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsGetCommand())

	return cmd
}

func newAppsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		bundleID string
		name     string
		sku      string
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apps",
		Long:  "List the apps of the team, optionally filtered by bundle ID, name or SKU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSort[asc.AppSort](sortBy)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			query := asc.NewAppQuery().WithLimit(pageSize(limit))
			if bundleID != "" {
				query.WithFilterBundleID(bundleID)
			}

			if name != "" {
				query.WithFilterName(name)
			}

			if sku != "" {
				query.WithFilterSKU(sku)
			}

			if sort != nil {
				query.WithSort(*sort)
			}

			ctx := cmd.Context()

			page, err := client.Apps().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list apps: %w", err)
			}

			apps, err := collectPages(ctx, client.Apps(), page, allPages)
			if err != nil {
				return err
			}

			return writeOutput(cmd, apps, func(writer io.Writer) error {
				if len(apps) == 0 {
					return printEmpty(writer, "apps")
				}

				rows := make([][]string, 0, len(apps))
				for _, app := range apps {
					rows = append(rows, []string{app.ID, app.Attributes.Name, app.Attributes.BundleID, app.Attributes.SKU})
				}

				if err := renderTable(writer, []string{"ID", "Name", "Bundle ID", "SKU"}, rows); err != nil {
					return err
				}

				if !allPages {
					printMoreHint(writer, len(apps), page.Meta.Paging.Total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "filter by bundle identifier")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&sku, "sku", "", "filter by SKU")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order, e.g. name or -bundleId")

	return cmd
}

func newAppsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APP_ID",
		Short: "Get app details",
		Long:  "Display detailed information about a specific app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			app, err := client.Apps().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get app: %w", err)
			}

			return writeOutput(cmd, app.Data, func(writer io.Writer) error {
				return renderProperties(writer, [][]string{
					{"ID", app.Data.ID},
					{"Name", app.Data.Attributes.Name},
					{"Bundle ID", app.Data.Attributes.BundleID},
					{"SKU", app.Data.Attributes.SKU},
					{"Primary Locale", formatConfigValue(app.Data.Attributes.PrimaryLocale)},
				})
			})
		},
	}
}
