package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredActor_Table(t *testing.T) {
	cases := []struct {
		from, to Status
		actor    Actor
		ok       bool
	}{
		{StatusPending, StatusAccepted, ActorProfessional, true},
		{StatusPending, StatusRejected, ActorProfessional, true},
		{StatusPending, StatusCancelled, ActorModel, true},
		{StatusAccepted, StatusCompleted, ActorProfessional, true},

		// terminal states have no exits
		{StatusRejected, StatusAccepted, "", false},
		{StatusRejected, StatusPending, "", false},
		{StatusCancelled, StatusAccepted, "", false},
		{StatusCompleted, StatusAccepted, "", false},

		// no skipping or reversing
		{StatusPending, StatusCompleted, "", false},
		{StatusAccepted, StatusPending, "", false},
		{StatusAccepted, StatusRejected, "", false},
		{StatusAccepted, StatusCancelled, "", false},
	}

	for _, tc := range cases {
		actor, ok := RequiredActor(tc.from, tc.to)
		assert.Equal(t, tc.ok, ok, "%s -> %s", tc.from, tc.to)
		if tc.ok {
			assert.Equal(t, tc.actor, actor, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}
