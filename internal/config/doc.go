// Package config provides configuration loading, merging, and validation
// facilities for the ticket service.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// The entry point is [GetStructuredConfig].
package config
