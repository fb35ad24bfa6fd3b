// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery implements a Redis backed service registry.
//
// Every running instance stores itself under
//
//	services:<service name>:<instance id>
//
// as a JSON encoded models.ServiceInstance with a TTL. A heartbeat worker
// rewrites the key before the TTL runs out, so crashed instances disappear
// on their own. [Registry.Resolve] lists the live instances of a service and
// hands them out round-robin.
package discovery
