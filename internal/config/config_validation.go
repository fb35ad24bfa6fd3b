// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// applyDerived fills fields whose defaults depend on other fields.
func (cfg *StructuredConfig) applyDerived() {
	if cfg.Discovery.AdvertiseAddress == "" && cfg.Server.HTTPAddress != "" {
		cfg.Discovery.AdvertiseAddress = "http://" + cfg.Server.HTTPAddress
	}
}

// DiscoveryEnabled reports whether the Redis registry is configured.
func (cfg *StructuredConfig) DiscoveryEnabled() bool {
	return cfg.Discovery.RedisAddress != ""
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServiceName == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" || !(strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.HasPrefix(dsn, "sqlite://") ||
		strings.HasPrefix(dsn, "file:")) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.DiscoveryEnabled() &&
		(cfg.Discovery.InstanceTTL <= 0 || cfg.Discovery.HeartbeatInterval <= 0 ||
			cfg.Discovery.HeartbeatInterval >= cfg.Discovery.InstanceTTL) {
		return ErrInvalidDiscoveryConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.UserServiceURL == "" && !(cfg.DiscoveryEnabled() && cfg.Adapter.UserServiceName != "") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
