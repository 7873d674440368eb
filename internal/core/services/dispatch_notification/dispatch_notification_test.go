package dispatchnotification

import (
	"context"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationContainsEventTitle(t *testing.T) {
	notifier := trigger.NewTestNotifier()
	service := New(logging.NewFakeLogger(), notifier)

	_, err := service.Run(context.Background(), Input{Key: "event:1", Payload: "Standup"})

	assert.Nil(t, err)
	assert.Equal(
		t,
		[]trigger.TestNotification{
			{Title: "Event Reminder", Body: "You have an upcoming event: Standup"},
		},
		notifier.Shown,
	)
}

func TestNotifierErrorIsReturned(t *testing.T) {
	notifier := trigger.NewTestNotifier()
	notifier.Error = errors.New("notification surface is down")
	service := New(logging.NewFakeLogger(), notifier)

	_, err := service.Run(context.Background(), Input{Key: "event:1", Payload: "Standup"})

	assert.NotNil(t, err)
	assert.Empty(t, notifier.Shown)
}
