package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials      = errors.New("no API key configured, set issuer, key_id and private_key_path with 'asc config set'")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json, yaml or auto")
	ErrInvalidJWTFormat   = errors.New("invalid JWT format")
	ErrNoExpirationClaim  = errors.New("no expiration claim found")
	ErrEmptyImportFile    = errors.New("import file lists no devices")
	ErrBatchHadFailures   = errors.New("one or more batch operations failed")
	ErrNoUpdateRequested  = errors.New("nothing to update, pass --name or --status")
	ErrNoUserChangesGiven = errors.New("nothing to modify, pass --role, --all-apps-visible, --provisioning-allowed or --visible-app")
)
