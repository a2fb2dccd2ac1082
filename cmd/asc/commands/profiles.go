package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// NewProfilesCommand creates the profiles command group.
func NewProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Manage provisioning profiles",
		Long:    "List, create, download and delete provisioning profiles",
	}

	cmd.AddCommand(newProfilesListCommand())
	cmd.AddCommand(newProfilesGetCommand())
	cmd.AddCommand(newProfilesCreateCommand())
	cmd.AddCommand(newProfilesDeleteCommand())

	return cmd
}

func newProfilesListCommand() *cobra.Command {
	var (
		allPages    bool
		limit       int
		name        string
		profileType string
		state       string
		sortBy      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Long:  "List provisioning profiles, optionally filtered by name, type or state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSort[asc.ProfileSort](sortBy)
			if err != nil {
				return err
			}

			query := asc.NewProfileQuery().WithLimit(pageSize(limit))

			if name != "" {
				query.WithFilterName(name)
			}

			if profileType != "" {
				parsed, err := parseProfileType(profileType)
				if err != nil {
					return err
				}

				query.WithFilterProfileType(parsed)
			}

			if state != "" {
				parsed, err := asc.ParseProfileState(strings.ToUpper(state))
				if err != nil {
					return fmt.Errorf("%w: %s", ErrInvalidProfileState, state)
				}

				query.WithFilterProfileState(parsed)
			}

			if sort != nil {
				query.WithSort(*sort)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			page, err := client.Profiles().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			profiles, err := collectPages(ctx, client.Profiles(), page, allPages)
			if err != nil {
				return err
			}

			return writeOutput(cmd, profiles, func(writer io.Writer) error {
				if len(profiles) == 0 {
					return printEmpty(writer, "profiles")
				}

				rows := make([][]string, 0, len(profiles))
				for _, profile := range profiles {
					rows = append(rows, []string{
						profile.ID,
						truncate(profile.Attributes.Name),
						string(profile.Attributes.ProfileType),
						string(profile.Attributes.ProfileState),
						formatTime(profile.Attributes.ExpirationDate),
					})
				}

				if err := renderTable(writer, []string{"ID", "Name", "Type", "State", "Expires"}, rows); err != nil {
					return err
				}

				if !allPages {
					printMoreHint(writer, len(profiles), page.Meta.Paging.Total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&profileType, "type", "", "filter by profile type, e.g. IOS_APP_STORE")
	cmd.Flags().StringVar(&state, "state", "", "filter by state (ACTIVE, INVALID)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order, e.g. name or -profileType")

	return cmd
}

func newProfilesGetCommand() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "get PROFILE_ID",
		Short: "Get profile details",
		Long:  "Display a provisioning profile, optionally saving it with --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			profile, err := client.Profiles().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			if savePath != "" {
				return saveBase64Content(cmd, profile.Data.Attributes.ProfileContent, savePath)
			}

			return writeOutput(cmd, profile.Data, func(writer io.Writer) error {
				return displayProfile(writer, &profile.Data)
			})
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "write the profile (.mobileprovision) to this path")

	return cmd
}

func newProfilesCreateCommand() *cobra.Command {
	var (
		profileType  string
		bundleID     string
		certificates []string
		devices      []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a profile",
		Long: `Create a provisioning profile for a bundle ID. Development and ad hoc
profiles also need the devices they may be installed on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseProfileType(profileType)
			if err != nil {
				return err
			}

			if bundleID == "" {
				return ErrBundleIDRequired
			}

			if len(certificates) == 0 {
				return ErrCertificateNeeded
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := asc.NewProfileCreateRequest(args[0], parsed, bundleID, certificates, devices)

			profile, err := client.Profiles().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}

			return writeOutput(cmd, profile.Data, func(writer io.Writer) error {
				return displayProfile(writer, &profile.Data)
			})
		},
	}

	cmd.Flags().StringVar(&profileType, "type", string(asc.ProfileTypeIOSAppDevelopment), "profile type")
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "resource id of the bundle ID")
	cmd.Flags().StringSliceVar(&certificates, "certificate", nil, "certificate resource id (repeatable)")
	cmd.Flags().StringSliceVar(&devices, "device", nil, "device resource id (repeatable)")

	return cmd
}

func newProfilesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROFILE_ID",
		Short: "Delete a profile",
		Long:  "Delete a provisioning profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Profiles().Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete profile: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])

			return nil
		},
	}
}

func parseProfileType(value string) (asc.ProfileType, error) {
	profileType, err := asc.ParseProfileType(strings.ToUpper(value))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidProfileType, value)
	}

	return profileType, nil
}

func displayProfile(writer io.Writer, profile *asc.Profile) error {
	return renderProperties(writer, [][]string{
		{"ID", profile.ID},
		{"Name", profile.Attributes.Name},
		{"Type", string(profile.Attributes.ProfileType)},
		{"State", string(profile.Attributes.ProfileState)},
		{"Platform", formatConfigValue(profile.Attributes.Platform)},
		{"UUID", profile.Attributes.UUID},
		{"Created", formatTime(profile.Attributes.CreatedDate)},
		{"Expires", formatTime(profile.Attributes.ExpirationDate)},
	})
}
