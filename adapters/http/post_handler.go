package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postUC "github.com/hoangnp/careernet/internal/application/usecase/post"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type PostHandler struct {
	createUC     *postUC.CreatePostUseCase
	getUC        *postUC.GetPostUseCase
	listUC       *postUC.ListPostsUseCase
	updateUC     *postUC.UpdatePostUseCase
	deleteUC     *postUC.DeletePostUseCase
	toggleLikeUC *postUC.ToggleLikeUseCase
	addCommentUC *postUC.AddCommentUseCase
	setImageUC   *postUC.SetPostImageUseCase
	baseURL      string
}

func NewPostHandler(
	createUC *postUC.CreatePostUseCase,
	getUC *postUC.GetPostUseCase,
	listUC *postUC.ListPostsUseCase,
	updateUC *postUC.UpdatePostUseCase,
	deleteUC *postUC.DeletePostUseCase,
	toggleLikeUC *postUC.ToggleLikeUseCase,
	addCommentUC *postUC.AddCommentUseCase,
	setImageUC *postUC.SetPostImageUseCase,
	baseURL string,
) *PostHandler {
	return &PostHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		toggleLikeUC: toggleLikeUC,
		addCommentUC: addCommentUC,
		setImageUC:   setImageUC,
		baseURL:      baseURL,
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.createUC.Execute(c.Request.Context(), postUC.CreatePostInput{
		OwnerID: ownerID,
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post_id": output.PostID})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), postID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	output, err := h.listUC.Execute(c.Request.Context(), postUC.ListPostsInput{Page: page, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PostDTO, len(output.Posts))
	for i, p := range output.Posts {
		dtos[i] = ToPostDTO(p)
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": dtos,
		"total": output.Total,
		"links": h.paginationLinks(output.Page, output.Limit, output.Total),
	})
}

// paginationLinks builds absolute next/prev URLs from the page window and the
// total row count.
func (h *PostHandler) paginationLinks(page, limit int, total int64) gin.H {
	links := gin.H{}
	if int64(page*limit) < total {
		links["next"] = fmt.Sprintf("%s/api/posts?page=%d&limit=%d", h.baseURL, page+1, limit)
	}
	if page > 1 {
		links["prev"] = fmt.Sprintf("%s/api/posts?page=%d&limit=%d", h.baseURL, page-1, limit)
	}
	return links
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	var req UpdatePostRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), postUC.UpdatePostInput{
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), postID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}
	actorID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	output, err := h.toggleLikeUC.Execute(c.Request.Context(), postID, actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"like_count": output.LikeCount,
		"liked":      output.Liked,
	})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}
	authorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	comment, err := h.addCommentUC.Execute(c.Request.Context(), postUC.AddCommentInput{
		PostID:   postID,
		AuthorID: authorID,
		Text:     req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, CommentDTO{
		ID:        comment.ID.String(),
		AuthorID:  comment.AuthorID.String(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	})
}

func (h *PostHandler) SetPostImage(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	file, err := openImageFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	p, err := h.setImageUC.Execute(c.Request.Context(), postID, file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}
