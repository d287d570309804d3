package http

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	careerUC "github.com/hoangnp/careernet/internal/application/usecase/career"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type CareerHandler struct {
	createExpUC   *careerUC.CreateExperienceUseCase
	getExpUC      *careerUC.GetExperienceUseCase
	updateExpUC   *careerUC.UpdateExperienceUseCase
	deleteExpUC   *careerUC.DeleteExperienceUseCase
	setExpImageUC *careerUC.SetExperienceImageUseCase
	exportExpUC   *careerUC.ExportExperiencesUseCase
	educationUC   *careerUC.EducationUseCase
	logger        logger.Logger
}

func NewCareerHandler(
	createExpUC *careerUC.CreateExperienceUseCase,
	getExpUC *careerUC.GetExperienceUseCase,
	updateExpUC *careerUC.UpdateExperienceUseCase,
	deleteExpUC *careerUC.DeleteExperienceUseCase,
	setExpImageUC *careerUC.SetExperienceImageUseCase,
	exportExpUC *careerUC.ExportExperiencesUseCase,
	educationUC *careerUC.EducationUseCase,
	log logger.Logger,
) *CareerHandler {
	return &CareerHandler{
		createExpUC:   createExpUC,
		getExpUC:      getExpUC,
		updateExpUC:   updateExpUC,
		deleteExpUC:   deleteExpUC,
		setExpImageUC: setExpImageUC,
		exportExpUC:   exportExpUC,
		educationUC:   educationUC,
		logger:        log,
	}
}

func parseSubEntityIDs(c *gin.Context, param string) (userID, subID uuid.UUID, err error) {
	userID, err = uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.NewInvalidInput("invalid user ID", err)
	}
	subID, err = uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.NewInvalidInput(fmt.Sprintf("invalid %s", param), err)
	}
	return userID, subID, nil
}

// Experiences

func (h *CareerHandler) CreateExperience(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := careerUC.CreateExperienceInput{
		UserID:      userID,
		Role:        req.Role,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Area:        req.Area,
	}

	output, err := h.createExpUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToExperienceDTO(output.Experience))
}

func (h *CareerHandler) ListExperiences(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	experiences, err := h.getExpUC.ListExperiences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ExperienceDTO, len(experiences))
	for i, e := range experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *CareerHandler) GetExperience(c *gin.Context) {
	userID, expID, err := parseSubEntityIDs(c, "expId")
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.getExpUC.GetExperience(c.Request.Context(), userID, expID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *CareerHandler) UpdateExperience(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}
	expID, err := uuid.Parse(c.Param("expId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid expId", err))
		return
	}

	var patch user.ExperiencePatch
	if err := bindStrictJSON(c, &patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := careerUC.UpdateExperienceInput{
		UserID:       userID,
		ExperienceID: expID,
		Patch:        patch,
	}

	output, err := h.updateExpUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *CareerHandler) DeleteExperience(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}
	expID, err := uuid.Parse(c.Param("expId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid expId", err))
		return
	}

	if err := h.deleteExpUC.Execute(c.Request.Context(), userID, expID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CareerHandler) SetExperienceImage(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}
	expID, err := uuid.Parse(c.Param("expId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid expId", err))
		return
	}

	file, err := openImageFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	input := careerUC.SetExperienceImageInput{
		UserID:       userID,
		ExperienceID: expID,
		File:         file,
	}

	output, err := h.setExpImageUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *CareerHandler) ExportExperiencesCSV(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	output, err := h.exportExpUC.Execute(c.Request.Context(), userID, c.QueryArray("fields"))
	if err != nil {
		c.Error(err)
		return
	}
	h.writeCSV(c, output)
}

// writeCSV streams the projected records. Headers must be set before the
// first write hits the wire.
func (h *CareerHandler) writeCSV(c *gin.Context, output *careerUC.ExportOutput) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(output.Header); err != nil {
		h.logger.Warn("CSV stream aborted")
		return
	}
	for _, record := range output.Records {
		if err := w.Write(record); err != nil {
			h.logger.Warn("CSV stream aborted")
			return
		}
	}
	w.Flush()
}

// Educations

func (h *CareerHandler) CreateEducation(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := careerUC.CreateEducationInput{
		UserID:      userID,
		School:      req.School,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Grade:       req.Grade,
		Activity:    req.Activity,
		Description: req.Description,
	}

	e, err := h.educationUC.CreateEducation(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToEducationDTO(e))
}

func (h *CareerHandler) ListEducations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	educations, err := h.educationUC.ListEducations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]EducationDTO, len(educations))
	for i, e := range educations {
		dtos[i] = ToEducationDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *CareerHandler) GetEducation(c *gin.Context) {
	userID, eduID, err := parseSubEntityIDs(c, "eduId")
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.educationUC.GetEducation(c.Request.Context(), userID, eduID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *CareerHandler) UpdateEducation(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}
	eduID, err := uuid.Parse(c.Param("eduId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid eduId", err))
		return
	}

	var patch user.EducationPatch
	if err := bindStrictJSON(c, &patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	e, err := h.educationUC.UpdateEducation(c.Request.Context(), userID, eduID, patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *CareerHandler) DeleteEducation(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}
	eduID, err := uuid.Parse(c.Param("eduId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid eduId", err))
		return
	}

	if err := h.educationUC.DeleteEducation(c.Request.Context(), userID, eduID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CareerHandler) SetEducationImage(c *gin.Context) {
	userID, err := RequireSelf(c)
	if err != nil {
		c.Error(err)
		return
	}
	eduID, err := uuid.Parse(c.Param("eduId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid eduId", err))
		return
	}

	file, err := openImageFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	e, err := h.educationUC.SetEducationImage(c.Request.Context(), userID, eduID, file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *CareerHandler) ExportEducationsCSV(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	output, err := h.educationUC.ExportEducations(c.Request.Context(), userID, c.QueryArray("fields"))
	if err != nil {
		c.Error(err)
		return
	}
	h.writeCSV(c, output)
}
