package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userUC "github.com/hoangnp/careernet/internal/application/usecase/user"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type UserHandler struct {
	registerUC *userUC.RegisterUserUseCase
	getUC      *userUC.GetUserUseCase
	updateUC   *userUC.UpdateUserUseCase
	deleteUC   *userUC.DeleteUserUseCase
	searchUC   *userUC.SearchUsersUseCase
	setImageUC *userUC.SetUserImageUseCase
}

func NewUserHandler(
	registerUC *userUC.RegisterUserUseCase,
	getUC *userUC.GetUserUseCase,
	updateUC *userUC.UpdateUserUseCase,
	deleteUC *userUC.DeleteUserUseCase,
	searchUC *userUC.SearchUsersUseCase,
	setImageUC *userUC.SetUserImageUseCase,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		getUC:      getUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		searchUC:   searchUC,
		setImageUC: setImageUC,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := userUC.RegisterUserInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
		Title:    req.Title,
		Area:     req.Area,
		Image:    req.Image,
	}

	output, err := h.registerUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToUserDTO(output.User))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	u, err := h.getUC.Execute(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := userUC.UpdateUserInput{
		UserID:  userID,
		Name:    req.Name,
		Surname: req.Surname,
		Bio:     req.Bio,
		Title:   req.Title,
		Area:    req.Area,
	}

	u, err := h.updateUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	input := userUC.SearchUsersInput{
		Query: c.Query("q"),
		Page:  page,
		Limit: limit,
	}

	users, err := h.searchUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *UserHandler) SetUserImage(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}

	file, err := openImageFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	u, err := h.setImageUC.Execute(c.Request.Context(), userID, file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

// openImageFile pulls the 'image' part out of the multipart form and rejects
// anything that is not a JPEG or PNG.
func openImageFile(c *gin.Context) (multipart.File, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, apperror.NewInvalidInput("'image' file is required", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return nil, apperror.NewInvalidInput("only JPEG and PNG images are accepted", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.NewInternal("failed to open uploaded file", err)
	}
	return file, nil
}
