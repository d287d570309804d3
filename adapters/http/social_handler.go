package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	socialUC "github.com/hoangnp/careernet/internal/application/usecase/social"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type SocialHandler struct {
	requestUC *socialUC.RequestFriendUseCase
	acceptUC  *socialUC.AcceptFriendUseCase
	revokeUC  *socialUC.RevokeFriendUseCase
}

func NewSocialHandler(
	requestUC *socialUC.RequestFriendUseCase,
	acceptUC *socialUC.AcceptFriendUseCase,
	revokeUC *socialUC.RevokeFriendUseCase,
) *SocialHandler {
	return &SocialHandler{
		requestUC: requestUC,
		acceptUC:  acceptUC,
		revokeUC:  revokeUC,
	}
}

func (h *SocialHandler) parsePair(c *gin.Context) (userID, peerID uuid.UUID, err error) {
	userID, err = RequireSelf(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	peerID, err = uuid.Parse(c.Param("peerId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.NewInvalidInput("invalid peer ID", err)
	}
	return userID, peerID, nil
}

// RequestFriend: the caller sends a request to peerId.
func (h *SocialHandler) RequestFriend(c *gin.Context) {
	userID, peerID, err := h.parsePair(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.requestUC.Execute(c.Request.Context(), userID, peerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"state": string(output.Edge)})
}

// AcceptFriend: the caller accepts the pending request from peerId.
func (h *SocialHandler) AcceptFriend(c *gin.Context) {
	userID, peerID, err := h.parsePair(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.acceptUC.Execute(c.Request.Context(), userID, peerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": string(output.Edge)})
}

// RevokeFriend drops the edge whatever its current state; repeating the call
// is a no-op that still returns 204.
func (h *SocialHandler) RevokeFriend(c *gin.Context) {
	userID, peerID, err := h.parsePair(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.revokeUC.Execute(c.Request.Context(), userID, peerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
