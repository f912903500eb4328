package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationKindFor(t *testing.T) {
	tests := []struct {
		op      Operation
		success bool
		want    NotificationKind
	}{
		{OperationRegister, true, NotificationRegisterSuccess},
		{OperationRegister, false, NotificationRegisterFailure},
		{OperationLogin, true, NotificationLoginSuccess},
		{OperationLogin, false, NotificationLoginFailure},
		{OperationResume, true, NotificationLoginSuccess},
		{OperationResume, false, NotificationLoginFailure},
		{OperationLogout, true, NotificationLogoutSuccess},
		{OperationRefresh, true, NotificationProfileRefresh},
		{OperationRefresh, false, NotificationRefreshFailure},
		{OperationWins, true, NotificationStatsUpdated},
		{OperationAddPlayedSeconds, false, NotificationStatsUpdated},
		{OperationSetLastPlayed, true, NotificationStatsUpdated},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, NotificationKindFor(tt.op, tt.success))
		})
	}
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
