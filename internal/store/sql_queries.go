// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveLastUserID = `
		INSERT INTO session_state (id, last_user_id, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_user_id = excluded.last_user_id,
			updated_at = excluded.updated_at;`

	getLastUserID = `
		SELECT last_user_id
		FROM session_state
		WHERE id = 1;`

	clearLastUserID = `
		DELETE FROM session_state
		WHERE id = 1;`
)
