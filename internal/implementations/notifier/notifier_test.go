package notifier

import (
	"context"
	"errors"
	"testing"

	"eventcal/internal/core/domain/trigger"

	"github.com/stretchr/testify/assert"
)

func TestCompositeShowsOnEveryNotifier(t *testing.T) {
	first := trigger.NewTestNotifier()
	second := trigger.NewTestNotifier()
	composite := NewComposite(first, second)

	err := composite.Show(context.Background(), "Event Reminder", "You have an upcoming event: Standup")

	assert.Nil(t, err)
	assert.Len(t, first.Shown, 1)
	assert.Len(t, second.Shown, 1)
	assert.Equal(t, "Event Reminder", first.Shown[0].Title)
	assert.Equal(t, "You have an upcoming event: Standup", second.Shown[0].Body)
}

func TestCompositeAttemptsRemainingNotifiersAfterFailure(t *testing.T) {
	first := trigger.NewTestNotifier()
	first.Error = errors.New("stream is gone")
	second := trigger.NewTestNotifier()
	composite := NewComposite(first, second)

	err := composite.Show(context.Background(), "Event Reminder", "You have an upcoming event: Standup")

	assert.ErrorIs(t, err, first.Error)
	assert.Empty(t, first.Shown)
	assert.Len(t, second.Shown, 1)
}

func TestCompositeReturnsFirstError(t *testing.T) {
	first := trigger.NewTestNotifier()
	first.Error = errors.New("stream is gone")
	second := trigger.NewTestNotifier()
	second.Error = errors.New("email rejected")
	composite := NewComposite(first, second)

	err := composite.Show(context.Background(), "Event Reminder", "You have an upcoming event: Standup")

	assert.ErrorIs(t, err, first.Error)
	assert.NotErrorIs(t, err, second.Error)
}

func TestCompositeWithoutNotifiersIsNoop(t *testing.T) {
	composite := NewComposite()

	err := composite.Show(context.Background(), "Event Reminder", "You have an upcoming event: Standup")

	assert.Nil(t, err)
}

func TestNewCompositePanicsOnNilNotifier(t *testing.T) {
	assert.Panics(t, func() { NewComposite(trigger.NewTestNotifier(), nil) })
}
