// AngelaMos | 2026
// dto.go

package blog

import (
	"time"
)

type CreateBlogPostRequest struct {
	Title    string `json:"title"    validate:"required,min=1,max=300"`
	Excerpt  string `json:"excerpt"  validate:"required,min=1"`
	Content  string `json:"content"  validate:"required,min=1"`
	Author   string `json:"author"   validate:"omitempty,max=100"`
	Date     string `json:"date"     validate:"omitempty,max=50"`
	Category string `json:"category" validate:"omitempty,max=100"`
	ReadTime int    `json:"readTime" validate:"required,gt=0"`
	Image    string `json:"image"    validate:"omitempty,startswith=/uploads/"`
}

type UpdateBlogPostRequest struct {
	Title    *string `json:"title,omitempty"    validate:"omitempty,min=1,max=300"`
	Excerpt  *string `json:"excerpt,omitempty"  validate:"omitempty,min=1"`
	Content  *string `json:"content,omitempty"  validate:"omitempty,min=1"`
	Author   *string `json:"author,omitempty"   validate:"omitempty,max=100"`
	Date     *string `json:"date,omitempty"     validate:"omitempty,max=50"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	ReadTime *int    `json:"readTime,omitempty" validate:"omitempty,gt=0"`
	Image    *string `json:"image,omitempty"    validate:"omitempty,startswith=/uploads/"`
}

type BlogPostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	ReadTime  int       `json:"readTime"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToBlogPostResponse(p *BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Author:    p.Author,
		Date:      p.Date,
		Category:  p.Category,
		ReadTime:  p.ReadTime,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToBlogPostResponseList(posts []BlogPost) []BlogPostResponse {
	responses := make([]BlogPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToBlogPostResponse(&posts[i]))
	}
	return responses
}
