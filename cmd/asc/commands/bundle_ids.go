package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// NewBundleIDsCommand creates the bundle-ids command group.
func NewBundleIDsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bundle-ids",
		Aliases: []string{"bundle-id", "bids"},
		Short:   "Manage bundle IDs",
		Long:    "Register, inspect and delete bundle IDs and list their capabilities",
	}

	cmd.AddCommand(newBundleIDsListCommand())
	cmd.AddCommand(newBundleIDsGetCommand())
	cmd.AddCommand(newBundleIDsRegisterCommand())
	cmd.AddCommand(newBundleIDsDeleteCommand())
	cmd.AddCommand(newBundleIDsCapabilitiesCommand())

	return cmd
}

func newBundleIDsListCommand() *cobra.Command {
	var (
		allPages   bool
		limit      int
		identifier string
		name       string
		platform   string
		sortBy     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bundle IDs",
		Long:  "List registered bundle IDs, optionally filtered by identifier, name or platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSort[asc.BundleIDSort](sortBy)
			if err != nil {
				return err
			}

			query := asc.NewBundleIDQuery().WithLimit(pageSize(limit))

			if platform != "" {
				parsed, err := parsePlatform(platform)
				if err != nil {
					return err
				}

				query.WithFilterPlatform(parsed)
			}

			if identifier != "" {
				query.WithFilterIdentifier(identifier)
			}

			if name != "" {
				query.WithFilterName(name)
			}

			if sort != nil {
				query.WithSort(*sort)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			page, err := client.BundleIDs().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list bundle IDs: %w", err)
			}

			bundleIDs, err := collectPages(ctx, client.BundleIDs(), page, allPages)
			if err != nil {
				return err
			}

			return writeOutput(cmd, bundleIDs, func(writer io.Writer) error {
				if len(bundleIDs) == 0 {
					return printEmpty(writer, "bundle IDs")
				}

				rows := make([][]string, 0, len(bundleIDs))
				for _, bundleID := range bundleIDs {
					rows = append(rows, []string{
						bundleID.ID,
						bundleID.Attributes.Name,
						bundleID.Attributes.Identifier,
						bundleID.Attributes.Platform,
						bundleID.Attributes.SeedID,
					})
				}

				if err := renderTable(writer, []string{"ID", "Name", "Identifier", "Platform", "Seed ID"}, rows); err != nil {
					return err
				}

				if !allPages {
					printMoreHint(writer, len(bundleIDs), page.Meta.Paging.Total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")
	cmd.Flags().StringVar(&identifier, "identifier", "", "filter by identifier, e.g. com.example.app")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform (IOS, MAC_OS, UNIVERSAL)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order, e.g. name or -identifier")

	return cmd
}

func newBundleIDsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BUNDLE_ID_ID",
		Short: "Get bundle ID details",
		Long:  "Display detailed information about a specific bundle ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			bundleID, err := client.BundleIDs().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get bundle ID: %w", err)
			}

			return writeOutput(cmd, bundleID.Data, func(writer io.Writer) error {
				return displayBundleID(writer, &bundleID.Data)
			})
		},
	}
}

func newBundleIDsRegisterCommand() *cobra.Command {
	var (
		platform string
		seedID   string
	)

	cmd := &cobra.Command{
		Use:   "register NAME IDENTIFIER",
		Short: "Register a bundle ID",
		Long:  "Register a new explicit or wildcard bundle ID, e.g. com.example.app or com.example.*",
		Args:  cobra.ExactArgs(2), //nolint:mnd // name and identifier
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parsePlatform(platform)
			if err != nil {
				return err
			}

			request := asc.NewBundleIDCreateRequest(args[0], args[1], parsed)
			request.Data.Attributes.SeedID = seedID

			client, err := createClient()
			if err != nil {
				return err
			}

			bundleID, err := client.BundleIDs().Register(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to register bundle ID: %w", err)
			}

			return writeOutput(cmd, bundleID.Data, func(writer io.Writer) error {
				return displayBundleID(writer, &bundleID.Data)
			})
		},
	}

	cmd.Flags().StringVar(&platform, "platform", string(asc.BundleIDPlatformIOS), "platform (IOS, MAC_OS, UNIVERSAL)")
	cmd.Flags().StringVar(&seedID, "seed-id", "", "app ID prefix, defaults to the team ID")

	return cmd
}

func newBundleIDsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BUNDLE_ID_ID",
		Short: "Delete a bundle ID",
		Long:  "Delete a bundle ID that is not used by any app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.BundleIDs().Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete bundle ID: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted bundle ID %s\n", args[0])

			return nil
		},
	}
}

func newBundleIDsCapabilitiesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "capabilities BUNDLE_ID_ID",
		Short: "List capabilities of a bundle ID",
		Long:  "List the capabilities enabled on a bundle ID together with their settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			query := asc.NewBundleIDCapabilityQuery().WithLimit(pageSize(limit))

			capabilities, err := client.BundleIDs().Capabilities(cmd.Context(), args[0], query)
			if err != nil {
				return fmt.Errorf("failed to list capabilities: %w", err)
			}

			return writeOutput(cmd, capabilities.Data, func(writer io.Writer) error {
				if len(capabilities.Data) == 0 {
					return printEmpty(writer, "capabilities")
				}

				rows := make([][]string, 0, len(capabilities.Data))
				for _, capability := range capabilities.Data {
					rows = append(rows, []string{
						capability.ID,
						string(capability.Attributes.CapabilityType),
						strconv.Itoa(len(capability.Attributes.Settings)),
					})
				}

				return renderTable(writer, []string{"ID", "Capability", "Settings"}, rows)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")

	return cmd
}

func displayBundleID(writer io.Writer, bundleID *asc.BundleID) error {
	return renderProperties(writer, [][]string{
		{"ID", bundleID.ID},
		{"Name", bundleID.Attributes.Name},
		{"Identifier", bundleID.Attributes.Identifier},
		{"Platform", bundleID.Attributes.Platform},
		{"Seed ID", formatConfigValue(bundleID.Attributes.SeedID)},
	})
}
