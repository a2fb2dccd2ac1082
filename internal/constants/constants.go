package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Client identification.
const (
	// DefaultUserAgent is sent when the caller does not configure one.
	DefaultUserAgent = "asc-go/1.0"

	// ConfigDirName is the directory under the user's home holding CLI state.
	ConfigDirName = ".asc"

	// ConfigFileName is the CLI configuration file inside ConfigDirName.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes every environment variable the CLI reads.
	EnvPrefix = "ASC"
)

// Concurrency and paging limits.
const (
	// DefaultConcurrencyLimit limits concurrent batch operations.
	DefaultConcurrencyLimit = 5

	// DefaultPageSize is the page size requested by list commands.
	DefaultPageSize = 50

	// MaxPageSize is the largest page the API serves.
	MaxPageSize = 200

	// MaxPages bounds --all listings.
	MaxPages = 1000
)

// Output formats.
const (
	// FormatTable renders human-readable tables.
	FormatTable = "table"

	// FormatJSON renders indented JSON.
	FormatJSON = "json"

	// FormatYAML renders YAML.
	FormatYAML = "yaml"

	// FormatAuto picks table on a terminal and JSON otherwise.
	FormatAuto = "auto"

	// JSONIndentSize is the indentation used for JSON output.
	JSONIndentSize = 2
)

// Display helpers.
const (
	// NotAvailable is printed for absent optional values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"

	// StringTruncationLength bounds long cells in table output.
	StringTruncationLength = 60

	// TokenPartsCount is the number of dot-separated parts in a JWT.
	TokenPartsCount = 3

	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2
)
