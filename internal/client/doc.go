// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client.
//
// It wires configuration, storage, the account adapter, telemetry and the
// sync services into an [App], and exposes the operations as cobra commands
// built by [NewRootCmd]. Every invocation is a short-lived process, so
// commands that act on the session first resume it from the persisted last
// user id.
package client
