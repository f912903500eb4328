// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the request body for both registration and login.
type Credentials struct {
	// Username is the account name.
	Username string `json:"nombre_usuario"`

	// Password is sent as-is; transport security is the service's concern.
	Password string `json:"contraseńa"`
}

// PlayedTimeRequest is the body of the add-played-time call.
type PlayedTimeRequest struct {
	// Seconds is the non-negative amount of play time to add.
	Seconds int64 `json:"tiempo_jugado"`
}

// LastPlayedRequest is the body of the set-last-played call. The service
// replaces its stored value with LastPlayed.
type LastPlayedRequest struct {
	LastPlayed string `json:"ultima_partida"`
}
