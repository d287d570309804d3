package user

import (
	"errors"

	"github.com/google/uuid"
)

// Social holds the relationship edges of one user. A peer id lives in at most
// one of the three sets at any time: friends (accepted), sent (outgoing
// request), pending (incoming request).
type Social struct {
	Friends []uuid.UUID `json:"friends"`
	Sent    []uuid.UUID `json:"sent"`
	Pending []uuid.UUID `json:"pending"`
}

type EdgeState string

const (
	EdgeNone      EdgeState = "none"
	EdgeRequested EdgeState = "requested"
	EdgeAccepted  EdgeState = "accepted"
)

var (
	ErrEdgeExists       = errors.New("relationship already requested or accepted")
	ErrNoPendingRequest = errors.New("no pending friend request from this user")
	ErrSelfEdge         = errors.New("cannot create a relationship with yourself")
)

// EdgeWith reports this endpoint's view of the edge to peer. Both endpoints
// agree after every transition because transitions always touch both
// aggregates together.
func (u *User) EdgeWith(peer uuid.UUID) EdgeState {
	switch {
	case containsID(u.Social.Friends, peer):
		return EdgeAccepted
	case containsID(u.Social.Sent, peer), containsID(u.Social.Pending, peer):
		return EdgeRequested
	default:
		return EdgeNone
	}
}

// RequestFriend moves the edge none -> requested: the requester records an
// outgoing edge, the target the mirrored incoming one.
func RequestFriend(from, to *User) error {
	if from.ID == to.ID {
		return ErrSelfEdge
	}
	if from.EdgeWith(to.ID) != EdgeNone || to.EdgeWith(from.ID) != EdgeNone {
		return ErrEdgeExists
	}
	from.Social.Sent = addID(from.Social.Sent, to.ID)
	to.Social.Pending = addID(to.Social.Pending, from.ID)
	return nil
}

// AcceptFriend moves requested -> accepted on both endpoints. Only the target
// of a pending request may accept it.
func AcceptFriend(target, requester *User) error {
	if !containsID(target.Social.Pending, requester.ID) || !containsID(requester.Social.Sent, target.ID) {
		return ErrNoPendingRequest
	}
	target.Social.Pending = removeID(target.Social.Pending, requester.ID)
	requester.Social.Sent = removeID(requester.Social.Sent, target.ID)
	target.Social.Friends = addID(target.Social.Friends, requester.ID)
	requester.Social.Friends = addID(requester.Social.Friends, target.ID)
	return nil
}

// RevokeFriend drops the edge from any state back to none on both endpoints.
// Idempotent: revoking a non-existent edge is a no-op.
func RevokeFriend(a, b *User) {
	a.Social.Friends = removeID(a.Social.Friends, b.ID)
	a.Social.Sent = removeID(a.Social.Sent, b.ID)
	a.Social.Pending = removeID(a.Social.Pending, b.ID)
	b.Social.Friends = removeID(b.Social.Friends, a.ID)
	b.Social.Sent = removeID(b.Social.Sent, a.ID)
	b.Social.Pending = removeID(b.Social.Pending, a.ID)
}

func containsID(set []uuid.UUID, id uuid.UUID) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

func addID(set []uuid.UUID, id uuid.UUID) []uuid.UUID {
	if containsID(set, id) {
		return set
	}
	return append(set, id)
}

func removeID(set []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}
