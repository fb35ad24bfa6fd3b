package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing service name or token
	// verification settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or one that selects no
	// supported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDiscoveryConfigs indicates a heartbeat interval that would
	// let the registration expire.
	ErrInvalidDiscoveryConfigs = errors.New("invalid discovery configuration")
	// ErrInvalidAdapterConfigs indicates the user service cannot be reached:
	// neither a static URL nor discovery is configured.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
