// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Close waits for in-flight operations and releases storage and
	// telemetry resources.
	Close(ctx context.Context) error
}
