// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	ErrStorage   = errors.New("storage initialization failed")
	ErrDiscovery = errors.New("service discovery failed")
	ErrAdapter   = errors.New("user service adapter initialization failed")
	ErrServices  = errors.New("services initialization failed")
	ErrTransport = errors.New("transport initialization failed")
)
