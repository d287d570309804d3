package http

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/internal/domain/user"
)

// bindStrictJSON decodes the request body rejecting unknown fields, so a
// mistyped key fails loudly instead of silently dropping the caller's intent.
func bindStrictJSON(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(obj)
}

// User DTOs

type SocialDTO struct {
	Friends []uuid.UUID `json:"friends"`
	Sent    []uuid.UUID `json:"sent_requests"`
	Pending []uuid.UUID `json:"pending_requests"`
}

type UserDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Surname     string          `json:"surname"`
	Email       string          `json:"email"`
	Bio         string          `json:"bio"`
	Title       string          `json:"title"`
	Area        string          `json:"area"`
	Image       string          `json:"image"`
	Experiences []ExperienceDTO `json:"experiences"`
	Educations  []EducationDTO  `json:"educations"`
	Social      SocialDTO       `json:"social"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	dto := UserDTO{
		ID:      u.ID.String(),
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Bio:     u.Bio,
		Title:   u.Title,
		Area:    u.Area,
		Image:   u.Image,
		Social: SocialDTO{
			Friends: u.Social.Friends,
			Sent:    u.Social.Sent,
			Pending: u.Social.Pending,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	dto.Experiences = make([]ExperienceDTO, len(u.Experiences))
	for i, e := range u.Experiences {
		dto.Experiences[i] = ToExperienceDTO(e)
	}
	dto.Educations = make([]EducationDTO, len(u.Educations))
	for i, e := range u.Educations {
		dto.Educations[i] = ToEducationDTO(e)
	}
	return dto
}

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Bio      string `json:"bio" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Area     string `json:"area" binding:"required"`
	Image    string `json:"image"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Bio     *string `json:"bio"`
	Title   *string `json:"title"`
	Area    *string `json:"area"`
}

// Career DTOs

type ExperienceDTO struct {
	ID          string     `json:"id"`
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
	Area        string     `json:"area"`
	Image       string     `json:"image"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToExperienceDTO(e user.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID.String(),
		Role:        e.Role,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		Area:        e.Area,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type EducationDTO struct {
	ID          string     `json:"id"`
	School      string     `json:"school"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Grade       string     `json:"grade"`
	Activity    string     `json:"activity"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToEducationDTO(e user.Education) EducationDTO {
	return EducationDTO{
		ID:          e.ID.String(),
		School:      e.School,
		Degree:      e.Degree,
		Field:       e.Field,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Grade:       e.Grade,
		Activity:    e.Activity,
		Description: e.Description,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type CreateExperienceRequest struct {
	Role        string     `json:"role" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	Area        string     `json:"area"`
}

type CreateEducationRequest struct {
	School      string     `json:"school" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Grade       string     `json:"grade"`
	Activity    string     `json:"activity"`
	Description string     `json:"description"`
}

// Post DTOs

type CommentDTO struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type PostDTO struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	Content   string       `json:"content"`
	Image     string       `json:"image"`
	Likes     []uuid.UUID  `json:"likes"`
	LikeCount int          `json:"like_count"`
	Comments  []CommentDTO `json:"comments"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func ToPostDTO(p *post.Post) PostDTO {
	dto := PostDTO{
		ID:        p.ID.String(),
		OwnerID:   p.OwnerID.String(),
		Content:   p.Content,
		Image:     p.Image,
		Likes:     p.Likes,
		LikeCount: len(p.Likes),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	dto.Comments = make([]CommentDTO, len(p.Comments))
	for i, cm := range p.Comments {
		dto.Comments[i] = CommentDTO{
			ID:        cm.ID.String(),
			AuthorID:  cm.AuthorID.String(),
			Text:      cm.Text,
			CreatedAt: cm.CreatedAt,
		}
	}
	return dto
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdatePostRequest struct {
	Content *string `json:"content"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
