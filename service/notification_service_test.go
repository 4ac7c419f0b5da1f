package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janseva/models"
	"janseva/repository"
	"janseva/service"
)

func newTestNotifier(t *testing.T) *service.NotificationService {
	t.Helper()
	return service.NewNotificationService(repository.NewMemoryNotificationRepository())
}

// TestNotificationsMostRecentFirst verifies the log is returned newest first.
func TestNotificationsMostRecentFirst(t *testing.T) {
	notifier := newTestNotifier(t)
	require.NoError(t, notifier.Send(models.RoleAdmin, "first", models.SeverityInfo, ""))
	require.NoError(t, notifier.Send(models.RoleAdmin, "second", models.SeverityInfo, ""))
	require.NoError(t, notifier.Send(models.RoleAdmin, "third", models.SeverityInfo, ""))

	notifications, err := notifier.List(models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "third", notifications[0].Message)
	assert.Equal(t, "second", notifications[1].Message)
	assert.Equal(t, "first", notifications[2].Message)
}

// TestNotificationsRoleFilter verifies role filtering and that an empty role
// returns the full log.
func TestNotificationsRoleFilter(t *testing.T) {
	notifier := newTestNotifier(t)
	require.NoError(t, notifier.Send(models.RoleWorker, "for worker", models.SeverityError, "CMP-1"))
	require.NoError(t, notifier.Send(models.RoleAuthority, "for authority", models.SeverityWarning, "CMP-1"))
	require.NoError(t, notifier.Send(models.RoleUser, "for citizen", models.SeveritySuccess, "CMP-1"))

	workerOnly, err := notifier.List(models.RoleWorker)
	require.NoError(t, err)
	require.Len(t, workerOnly, 1)
	assert.Equal(t, "for worker", workerOnly[0].Message)

	all, err := notifier.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// TestNotificationDefaults verifies fresh notifications are unread, stamped
// and default to info severity.
func TestNotificationDefaults(t *testing.T) {
	notifier := newTestNotifier(t)
	require.NoError(t, notifier.Send(models.RoleUser, "hello", "", "CMP-9"))

	notifications, err := notifier.List(models.RoleUser)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	notification := notifications[0]
	assert.NotEmpty(t, notification.NotificationID)
	assert.False(t, notification.Read)
	assert.False(t, notification.Timestamp.IsZero())
	assert.Equal(t, models.SeverityInfo, notification.Severity)
	assert.Equal(t, "CMP-9", notification.RelatedComplaintID)
}

// TestMarkReadFlipsFlag verifies acknowledging one notification leaves the
// rest untouched.
func TestMarkReadFlipsFlag(t *testing.T) {
	notifier := newTestNotifier(t)
	require.NoError(t, notifier.Send(models.RoleAdmin, "one", models.SeverityInfo, ""))
	require.NoError(t, notifier.Send(models.RoleAdmin, "two", models.SeverityInfo, ""))

	notifications, err := notifier.List(models.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, notifier.MarkRead(notifications[0].NotificationID))

	notifications, err = notifier.List(models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, notifications[0].Read)
	assert.False(t, notifications[1].Read)
}

// TestMarkReadUnknownIDIsNoOp verifies acknowledging a missing id neither
// errors nor disturbs the log.
func TestMarkReadUnknownIDIsNoOp(t *testing.T) {
	notifier := newTestNotifier(t)
	require.NoError(t, notifier.Send(models.RoleAdmin, "one", models.SeverityInfo, ""))

	assert.NoError(t, notifier.MarkRead("no-such-id"))

	notifications, err := notifier.List(models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
}
