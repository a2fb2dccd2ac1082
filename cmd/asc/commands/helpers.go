package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// Common string constants used throughout the commands package.
const (
	Yes = "yes"
	No  = "no"

	resultOK     = "ok"
	resultFailed = "failed"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidPlatform        = errors.New("invalid platform")
	ErrInvalidStatus          = errors.New("invalid device status")
	ErrInvalidSort            = errors.New("invalid sort order")
	ErrInvalidProfileType     = errors.New("invalid profile type")
	ErrInvalidProfileState    = errors.New("invalid profile state")
	ErrInvalidRole            = errors.New("invalid user role")
	ErrCSRRequired            = errors.New("certificate signing request is required (--csr)")
	ErrBundleIDRequired       = errors.New("bundle ID is required (--bundle-id)")
	ErrCertificateNeeded      = errors.New("at least one certificate is required (--certificate)")
	ErrInvalidTimeout         = errors.New("invalid timeout")
	ErrInvalidCertificateType = errors.New("invalid certificate type")
)

// outputFormat resolves the configured output format for writer. "auto"
// renders a table on a terminal and JSON everywhere else.
func outputFormat(writer io.Writer) (string, error) {
	format := strings.ToLower(viper.GetString(KeyOutput))

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	case "", constants.FormatAuto:
		if file, ok := writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return constants.FormatTable, nil
		}

		return constants.FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

// writeOutput encodes value as JSON or YAML, or calls table for table output.
func writeOutput(cmd *cobra.Command, value interface{}, table func(io.Writer) error) error {
	writer := cmd.OutOrStdout()

	format, err := outputFormat(writer)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	default:
		return table(writer)
	}
}

// renderTable writes rows under header.
func renderTable(writer io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(writer)

	cells := make([]any, len(header))
	for index, title := range header {
		cells[index] = title
	}

	table.Header(cells...)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties writes a two column Property/Value table.
func renderProperties(writer io.Writer, rows [][]string) error {
	return renderTable(writer, []string{"Property", "Value"}, rows)
}

// printEmpty reports an empty listing in table mode.
func printEmpty(writer io.Writer, resource string) error {
	_, err := fmt.Fprintf(writer, "No %s found\n", resource)

	return err
}

// printMoreHint tells the user that further pages exist.
func printMoreHint(writer io.Writer, shown int, total int64) {
	if total > int64(shown) {
		_, _ = fmt.Fprintf(writer, "\nShowing %d of %d. Use --all to fetch every page.\n", shown, total)
	}
}

// collectPages returns the items of first, following links.next when all is set.
func collectPages[T any](ctx context.Context, fetcher asc.PageFetcher[T], first *asc.PageResponse[T], all bool) ([]T, error) {
	if !all {
		return first.Data, nil
	}

	items, err := asc.FetchAllPages(ctx, fetcher, first, &asc.PaginationOptions{MaxPages: constants.MaxPages})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all pages: %w", err)
	}

	return items, nil
}

// pageSize validates a --limit value.
func pageSize(limit int) int64 {
	switch {
	case limit <= 0:
		return constants.DefaultPageSize
	case limit > constants.MaxPageSize:
		return constants.MaxPageSize
	default:
		return int64(limit)
	}
}

// parseTimeout reads a duration such as "45s". Empty means the default.
func parseTimeout(value string) (time.Duration, error) {
	if value == "" {
		return constants.DefaultHTTPTimeout, nil
	}

	timeout, err := time.ParseDuration(value)
	if err != nil || timeout < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTimeout, value)
	}

	return timeout, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return constants.NotAvailable
	}

	return value.Format(time.RFC3339)
}

func formatTimePtr(value *time.Time) string {
	if value == nil {
		return constants.NotAvailable
	}

	return formatTime(*value)
}

func formatOptional(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func formatBool(value bool) string {
	if value {
		return Yes
	}

	return No
}

func truncate(value string) string {
	runes := []rune(value)
	if len(runes) <= constants.StringTruncationLength {
		return value
	}

	return string(runes[:constants.StringTruncationLength-3]) + "..."
}

func joinRoles(roles []asc.UserRole) string {
	names := make([]string, len(roles))
	for index, role := range roles {
		names[index] = string(role)
	}

	return strings.Join(names, ", ")
}

func parsePlatform(value string) (asc.BundleIDPlatform, error) {
	platform, err := asc.ParseBundleIDPlatform(strings.ToUpper(value))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPlatform, value)
	}

	return platform, nil
}

// parseSort decodes a --sort value into one of the generated sort enums.
func parseSort[T any, PT interface {
	*T
	UnmarshalText(text []byte) error
}](value string) (*T, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // no sort requested
	}

	var sort T
	if err := PT(&sort).UnmarshalText([]byte(value)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSort, value)
	}

	return &sort, nil
}
