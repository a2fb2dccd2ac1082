package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage team members",
		Long:    "List team members, change their roles and app access, and remove them",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersModifyCommand())
	cmd.AddCommand(newUsersRemoveCommand())
	cmd.AddCommand(newUsersVisibleAppsCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		allPages   bool
		limit      int
		role       string
		username   string
		visibleApp string
		sortBy     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List team members, optionally filtered by role, username or visible app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSort[asc.UserSort](sortBy)
			if err != nil {
				return err
			}

			query := asc.NewUserQuery().WithLimit(pageSize(limit))

			if role != "" {
				parsed, err := parseRole(role)
				if err != nil {
					return err
				}

				query.WithFilterRoles(parsed)
			}

			if username != "" {
				query.WithFilterUsername(username)
			}

			if visibleApp != "" {
				query.WithFilterVisibleApps(visibleApp)
			}

			if sort != nil {
				query.WithSort(*sort)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			page, err := client.Users().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			users, err := collectPages(ctx, client.Users(), page, allPages)
			if err != nil {
				return err
			}

			return writeOutput(cmd, users, func(writer io.Writer) error {
				if len(users) == 0 {
					return printEmpty(writer, "users")
				}

				rows := make([][]string, 0, len(users))
				for _, user := range users {
					rows = append(rows, []string{
						user.ID,
						user.Attributes.Username,
						strings.TrimSpace(user.Attributes.FirstName + " " + user.Attributes.LastName),
						truncate(joinRoles(user.Attributes.Roles)),
						formatBool(user.Attributes.AllAppsVisible),
					})
				}

				if err := renderTable(writer, []string{"ID", "Username", "Name", "Roles", "All Apps"}, rows); err != nil {
					return err
				}

				if !allPages {
					printMoreHint(writer, len(users), page.Meta.Paging.Total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")
	cmd.Flags().StringVar(&role, "role", "", "filter by role, e.g. DEVELOPER")
	cmd.Flags().StringVar(&username, "username", "", "filter by username (email)")
	cmd.Flags().StringVar(&visibleApp, "visible-app", "", "filter by visible app id")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order, e.g. username or -lastName")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
		Long:  "Display detailed information about a specific team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return writeOutput(cmd, user.Data, func(writer io.Writer) error {
				return displayUser(writer, &user.Data)
			})
		},
	}
}

func newUsersModifyCommand() *cobra.Command {
	var (
		roles               []string
		allAppsVisible      bool
		provisioningAllowed bool
		visibleApps         []string
	)

	cmd := &cobra.Command{
		Use:   "modify USER_ID",
		Short: "Change roles or app access of a user",
		Long:  "Replace the roles of a team member or change which apps they can see",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := asc.NewUserUpdateRequest(args[0])
			changed := false

			if len(roles) > 0 {
				parsed := make([]asc.UserRole, 0, len(roles))

				for _, role := range roles {
					value, err := parseRole(role)
					if err != nil {
						return err
					}

					parsed = append(parsed, value)
				}

				request.WithRoles(parsed...)
				changed = true
			}

			if cmd.Flags().Changed("all-apps-visible") {
				request.WithAllAppsVisible(allAppsVisible)
				changed = true
			}

			if cmd.Flags().Changed("provisioning-allowed") {
				request.WithProvisioningAllowed(provisioningAllowed)
				changed = true
			}

			if len(visibleApps) > 0 {
				request.WithVisibleApps(visibleApps...)
				changed = true
			}

			if !changed {
				return constants.ErrNoUserChangesGiven
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Modify(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to modify user: %w", err)
			}

			return writeOutput(cmd, user.Data, func(writer io.Writer) error {
				return displayUser(writer, &user.Data)
			})
		},
	}

	cmd.Flags().StringSliceVar(&roles, "role", nil, "role to grant, replaces existing roles (repeatable)")
	cmd.Flags().BoolVar(&allAppsVisible, "all-apps-visible", false, "whether the user sees every app")
	cmd.Flags().BoolVar(&provisioningAllowed, "provisioning-allowed", false, "whether the user may access provisioning")
	cmd.Flags().StringSliceVar(&visibleApps, "visible-app", nil, "app id the user may see (repeatable)")

	return cmd
}

func newUsersRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove USER_ID",
		Short: "Remove a user",
		Long:  "Remove a member from the team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Users().Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to remove user: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed user %s\n", args[0])

			return nil
		},
	}
}

func newUsersVisibleAppsCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "visible-apps USER_ID",
		Short: "List apps visible to a user",
		Long:  "List the apps a team member can see",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			query := asc.NewUserVisibleAppsQuery().WithLimit(pageSize(limit))

			page, err := client.Users().VisibleApps(ctx, args[0], query)
			if err != nil {
				return fmt.Errorf("failed to list visible apps: %w", err)
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
					rows = append(rows, []string{app.ID, app.Attributes.Name, app.Attributes.BundleID})
				}

				return renderTable(writer, []string{"ID", "Name", "Bundle ID"}, rows)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")

	return cmd
}

func parseRole(value string) (asc.UserRole, error) {
	role, err := asc.ParseUserRole(strings.ToUpper(value))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRole, value)
	}

	return role, nil
}

func displayUser(writer io.Writer, user *asc.User) error {
	return renderProperties(writer, [][]string{
		{"ID", user.ID},
		{"Username", user.Attributes.Username},
		{"First Name", user.Attributes.FirstName},
		{"Last Name", user.Attributes.LastName},
		{"Roles", joinRoles(user.Attributes.Roles)},
		{"All Apps Visible", formatBool(user.Attributes.AllAppsVisible)},
		{"Provisioning Allowed", formatBool(user.Attributes.ProvisioningAllowed)},
	})
}
