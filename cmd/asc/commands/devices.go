package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// DeviceImportFile is the document read by 'devices import'.
//
//	devices:
//	  - name: Ada's iPhone
//	    udid: 00008030-001A2D2E0C41802E
//	    platform: IOS
type DeviceImportFile struct {
	Devices []DeviceImportEntry `json:"devices" yaml:"devices"`
}

// DeviceImportEntry describes one device to register. Platform defaults to IOS.
type DeviceImportEntry struct {
	Name     string `json:"name"               yaml:"name"`
	UDID     string `json:"udid"               yaml:"udid"`
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// DeviceImportResult reports the outcome for one entry.
type DeviceImportResult struct {
	UDID     string `json:"udid"                yaml:"udid"`
	Success  bool   `json:"success"             yaml:"success"`
	DeviceID string `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	Error    string `json:"error,omitempty"     yaml:"error,omitempty"`
	Duration string `json:"duration"            yaml:"duration"`
}

// NewDevicesCommand creates the devices command group.
func NewDevicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "devices",
		Aliases: []string{"device"},
		Short:   "Manage registered devices",
		Long:    "List, register, rename, enable and disable devices used for development and ad hoc distribution",
	}

	cmd.AddCommand(newDevicesListCommand())
	cmd.AddCommand(newDevicesGetCommand())
	cmd.AddCommand(newDevicesRegisterCommand())
	cmd.AddCommand(newDevicesUpdateCommand())
	cmd.AddCommand(newDevicesImportCommand())

	return cmd
}

func newDevicesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		name     string
		platform string
		status   string
		udid     string
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices",
		Long:  "List registered devices, optionally filtered by name, platform, status or UDID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSort[asc.DeviceSort](sortBy)
			if err != nil {
				return err
			}

			query := asc.NewDeviceQuery().WithLimit(pageSize(limit))

			if name != "" {
				query.WithFilterName(name)
			}

			if platform != "" {
				parsed, err := parsePlatform(platform)
				if err != nil {
					return err
				}

				query.WithFilterPlatform(parsed)
			}

			if status != "" {
				parsed, err := parseDeviceStatus(status)
				if err != nil {
					return err
				}

				query.WithFilterStatus(parsed)
			}

			if udid != "" {
				query.WithFilterUDID(udid)
			}

			if sort != nil {
				query.WithSort(*sort)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			page, err := client.Devices().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list devices: %w", err)
			}

			devices, err := collectPages(ctx, client.Devices(), page, allPages)
			if err != nil {
				return err
			}

			return writeOutput(cmd, devices, func(writer io.Writer) error {
				if len(devices) == 0 {
					return printEmpty(writer, "devices")
				}

				rows := make([][]string, 0, len(devices))
				for _, device := range devices {
					rows = append(rows, []string{
						device.ID,
						truncate(device.Attributes.Name),
						device.Attributes.UDID,
						device.Attributes.Platform,
						device.Attributes.DeviceClass,
						string(device.Attributes.Status),
					})
				}

				if err := renderTable(writer, []string{"ID", "Name", "UDID", "Platform", "Class", "Status"}, rows); err != nil {
					return err
				}

				if !allPages {
					printMoreHint(writer, len(devices), page.Meta.Paging.Total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform (IOS, MAC_OS)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (ENABLED, DISABLED)")
	cmd.Flags().StringVar(&udid, "udid", "", "filter by UDID")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order, e.g. name or -status")

	return cmd
}

func newDevicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DEVICE_ID",
		Short: "Get device details",
		Long:  "Display detailed information about a specific device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			device, err := client.Devices().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get device: %w", err)
			}

			return writeOutput(cmd, device.Data, func(writer io.Writer) error {
				return displayDevice(writer, &device.Data)
			})
		},
	}
}

func newDevicesRegisterCommand() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "register NAME UDID",
		Short: "Register a device",
		Long:  "Register a device for development and ad hoc distribution",
		Args:  cobra.ExactArgs(2), //nolint:mnd // name and UDID
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parsePlatform(platform)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			device, err := client.Devices().Register(cmd.Context(), asc.NewDeviceCreateRequest(args[0], parsed, args[1]))
			if err != nil {
				return fmt.Errorf("failed to register device: %w", err)
			}

			return writeOutput(cmd, device.Data, func(writer io.Writer) error {
				return displayDevice(writer, &device.Data)
			})
		},
	}

	cmd.Flags().StringVar(&platform, "platform", string(asc.BundleIDPlatformIOS), "platform (IOS, MAC_OS)")

	return cmd
}

func newDevicesUpdateCommand() *cobra.Command {
	var (
		name   string
		status string
	)

	cmd := &cobra.Command{
		Use:   "update DEVICE_ID",
		Short: "Rename, enable or disable a device",
		Long:  "Change the name or the status of a registered device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := buildDeviceUpdate(args[0], name, status)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			device, err := client.Devices().Update(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update device: %w", err)
			}

			return writeOutput(cmd, device.Data, func(writer io.Writer) error {
				return displayDevice(writer, &device.Data)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new device name")
	cmd.Flags().StringVar(&status, "status", "", "new status (ENABLED, DISABLED)")

	return cmd
}

func newDevicesImportCommand() *cobra.Command {
	var (
		concurrency int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Register devices from a file",
		Long: `Register every device listed in a YAML or JSON file:

  devices:
    - name: Ada's iPhone
      udid: 00008030-001A2D2E0C41802E
      platform: IOS

Registrations run concurrently. Every entry is attempted; failures are
reported per device.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readDeviceImportFile(args[0])
			if err != nil {
				return err
			}

			operations, err := buildDeviceImport(entries)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			executor := asc.NewBatchExecutor(client, concurrency)
			executor.SetTimeout(timeout)

			results, err := executor.Execute(cmd.Context(), operations)
			if err != nil {
				return fmt.Errorf("failed to import devices: %w", err)
			}

			report, failed := summarizeDeviceImport(results)

			err = writeOutput(cmd, report, func(writer io.Writer) error {
				rows := make([][]string, 0, len(report))
				for _, result := range report {
					outcome := resultOK
					if !result.Success {
						outcome = resultFailed
					}

					rows = append(rows, []string{result.UDID, outcome, result.DeviceID, truncate(result.Error), result.Duration})
				}

				return renderTable(writer, []string{"UDID", "Result", "Device ID", "Error", "Duration"}, rows)
			})
			if err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d devices", constants.ErrBatchHadFailures, failed, len(report))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "registrations in flight")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "deadline per registration, 0 for none")

	return cmd
}

func parseDeviceStatus(value string) (asc.DeviceStatus, error) {
	status, err := asc.ParseDeviceStatus(strings.ToUpper(value))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, value)
	}

	return status, nil
}

func buildDeviceUpdate(id, name, status string) (*asc.DeviceUpdateRequest, error) {
	if name == "" && status == "" {
		return nil, constants.ErrNoUpdateRequested
	}

	request := asc.NewDeviceUpdateRequest(id)

	if name != "" {
		request.WithName(name)
	}

	if status != "" {
		parsed, err := parseDeviceStatus(status)
		if err != nil {
			return nil, err
		}

		request.WithStatus(parsed)
	}

	return request, nil
}

func readDeviceImportFile(path string) ([]DeviceImportEntry, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var file DeviceImportFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	if len(file.Devices) == 0 {
		return nil, constants.ErrEmptyImportFile
	}

	return file.Devices, nil
}

// buildDeviceImport turns entries into registrations keyed by UDID.
func buildDeviceImport(entries []DeviceImportEntry) ([]asc.BatchOperation, error) {
	builder := asc.NewBatchBuilder()

	for _, entry := range entries {
		platform := asc.BundleIDPlatformIOS

		if entry.Platform != "" {
			parsed, err := parsePlatform(entry.Platform)
			if err != nil {
				return nil, fmt.Errorf("device %s: %w", entry.UDID, err)
			}

			platform = parsed
		}

		builder.AddRegisterDevice(entry.UDID, asc.NewDeviceCreateRequest(entry.Name, platform, entry.UDID))
	}

	return builder.Build(), nil
}

func summarizeDeviceImport(results []asc.BatchResult) ([]DeviceImportResult, int) {
	report := make([]DeviceImportResult, 0, len(results))
	failed := 0

	for _, result := range results {
		entry := DeviceImportResult{
			UDID:     result.ID,
			Success:  result.Success,
			Duration: result.Duration.Round(time.Millisecond).String(),
		}

		if device, ok := result.Data.(*asc.DeviceResponse); ok && device != nil {
			entry.DeviceID = device.Data.ID
		}

		if result.Error != nil {
			entry.Error = result.Error.Error()
		}

		if !result.Success {
			failed++
		}

		report = append(report, entry)
	}

	return report, failed
}

func displayDevice(writer io.Writer, device *asc.Device) error {
	return renderProperties(writer, [][]string{
		{"ID", device.ID},
		{"Name", device.Attributes.Name},
		{"UDID", device.Attributes.UDID},
		{"Platform", device.Attributes.Platform},
		{"Class", device.Attributes.DeviceClass},
		{"Model", formatOptional(device.Attributes.Model)},
		{"Status", string(device.Attributes.Status)},
		{"Added", formatTime(device.Attributes.AddedDate)},
	})
}
