package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeWithPending(ids ...string) BookingsEnvelope {
	env := BookingsEnvelope{Pending: []Booking{}, Confirmed: []Booking{}, Cancelled: []Booking{}}
	for _, id := range ids {
		env.Pending = append(env.Pending, Booking{ID: FlexID(id), Status: BookingPending})
	}
	return env
}

func TestEnvelopeConfirmMovesBooking(t *testing.T) {
	env := envelopeWithPending("b1", "b2")

	moved := env.Confirm("b1")
	assert.True(t, moved)

	require.Len(t, env.Pending, 1)
	assert.Equal(t, "b2", env.Pending[0].ID.String())

	require.Len(t, env.Confirmed, 1)
	assert.Equal(t, "b1", env.Confirmed[0].ID.String())
	assert.Equal(t, BookingConfirmed, env.Confirmed[0].Status)
}

func TestEnvelopeConfirmUnknownID(t *testing.T) {
	env := envelopeWithPending("b1")
	assert.False(t, env.Confirm("missing"))
	assert.Len(t, env.Pending, 1)
	assert.Empty(t, env.Confirmed)
}

func TestEnvelopeCancelMovesBooking(t *testing.T) {
	env := envelopeWithPending("b1")

	assert.True(t, env.Cancel("b1"))
	assert.Empty(t, env.Pending)
	require.Len(t, env.Cancelled, 1)
	assert.Equal(t, BookingCancelled, env.Cancelled[0].Status)
}

func TestFlexIDDecodesStringAndNumber(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc123"}`), &b))
	assert.Equal(t, "abc123", b.ID.String())

	var b2 Booking
	require.NoError(t, json.Unmarshal([]byte(`{"_id":42}`), &b2))
	assert.Equal(t, "42", b2.ID.String())
}

func TestCategoryRefDecodesStringAndObject(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(`{"category":"Birthday"}`), &it))
	assert.Equal(t, "Birthday", it.Category.Name)

	var it2 Item
	require.NoError(t, json.Unmarshal([]byte(`{"category":{"_id":"c1","name":"Wedding"}}`), &it2))
	assert.Equal(t, "Wedding", it2.Category.Name)
	assert.Equal(t, "c1", it2.Category.ID)
}
