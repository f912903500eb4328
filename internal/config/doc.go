// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// Unset values then receive defaults. The main entry point is
// [GetClientConfig]; [BindFlags] registers the flags on a cobra command.
package config
