package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func twoUsers() (*User, *User) {
	a := validUser()
	b := validUser()
	b.Email = "peer@example.com"
	return a, b
}

func TestRequestFriend(t *testing.T) {
	a, b := twoUsers()

	assert.NoError(t, RequestFriend(a, b))

	assert.Equal(t, EdgeRequested, a.EdgeWith(b.ID))
	assert.Equal(t, EdgeRequested, b.EdgeWith(a.ID))
	assert.Contains(t, a.Social.Sent, b.ID)
	assert.Contains(t, b.Social.Pending, a.ID)
	assert.Empty(t, a.Social.Friends)
	assert.Empty(t, b.Social.Friends)
}

func TestRequestFriend_SelfEdge(t *testing.T) {
	a := validUser()
	assert.ErrorIs(t, RequestFriend(a, a), ErrSelfEdge)
	assert.Empty(t, a.Social.Sent)
}

func TestRequestFriend_AlreadyRequested(t *testing.T) {
	a, b := twoUsers()

	assert.NoError(t, RequestFriend(a, b))
	assert.ErrorIs(t, RequestFriend(a, b), ErrEdgeExists)
	// The reverse direction is blocked too while a request is in flight.
	assert.ErrorIs(t, RequestFriend(b, a), ErrEdgeExists)
}

func TestAcceptFriend(t *testing.T) {
	a, b := twoUsers()
	assert.NoError(t, RequestFriend(a, b))

	assert.NoError(t, AcceptFriend(b, a))

	assert.Equal(t, EdgeAccepted, a.EdgeWith(b.ID))
	assert.Equal(t, EdgeAccepted, b.EdgeWith(a.ID))
	assert.Empty(t, a.Social.Sent)
	assert.Empty(t, b.Social.Pending)
}

func TestAcceptFriend_OnlyTargetMayAccept(t *testing.T) {
	a, b := twoUsers()
	assert.NoError(t, RequestFriend(a, b))

	// The requester cannot accept their own request.
	assert.ErrorIs(t, AcceptFriend(a, b), ErrNoPendingRequest)
	assert.Equal(t, EdgeRequested, a.EdgeWith(b.ID))
}

func TestAcceptFriend_NoPendingRequest(t *testing.T) {
	a, b := twoUsers()
	assert.ErrorIs(t, AcceptFriend(b, a), ErrNoPendingRequest)
}

func TestRequestFriend_BlockedWhileAccepted(t *testing.T) {
	a, b := twoUsers()
	assert.NoError(t, RequestFriend(a, b))
	assert.NoError(t, AcceptFriend(b, a))

	assert.ErrorIs(t, RequestFriend(a, b), ErrEdgeExists)
}

func TestRevokeFriend_FromAccepted(t *testing.T) {
	a, b := twoUsers()
	assert.NoError(t, RequestFriend(a, b))
	assert.NoError(t, AcceptFriend(b, a))

	RevokeFriend(a, b)

	assert.Equal(t, EdgeNone, a.EdgeWith(b.ID))
	assert.Equal(t, EdgeNone, b.EdgeWith(a.ID))
}

func TestRevokeFriend_CancelsPendingRequest(t *testing.T) {
	a, b := twoUsers()
	assert.NoError(t, RequestFriend(a, b))

	RevokeFriend(a, b)

	assert.Equal(t, EdgeNone, a.EdgeWith(b.ID))
	assert.Equal(t, EdgeNone, b.EdgeWith(a.ID))

	// The pair can start over after a revoke.
	assert.NoError(t, RequestFriend(b, a))
	assert.Equal(t, EdgeRequested, a.EdgeWith(b.ID))
}

func TestRevokeFriend_Idempotent(t *testing.T) {
	a, b := twoUsers()

	RevokeFriend(a, b)
	RevokeFriend(a, b)

	assert.Equal(t, EdgeNone, a.EdgeWith(b.ID))
}

func TestEdgeWith_UnknownPeer(t *testing.T) {
	a := validUser()
	assert.Equal(t, EdgeNone, a.EdgeWith(uuid.New()))
}
