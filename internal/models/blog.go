package models

import "time"

// Blog is a blog post as persisted in blogs.json.
type Blog struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Author           string    `json:"author"`
	BannerImage      string    `json:"bannerImage,omitempty"`
	Featured         bool      `json:"featured"`
	FeaturedDoctorID string    `json:"featuredDoctorId,omitempty"`
	Preferences      []string  `json:"preferences"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateBlogInput carries the caller-supplied fields of a new blog.
// Title, Content and Author are required; the store does not check them.
type CreateBlogInput struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Author           string   `json:"author"`
	BannerImage      string   `json:"bannerImage,omitempty"`
	Featured         *bool    `json:"featured,omitempty"`
	FeaturedDoctorID string   `json:"featuredDoctorId,omitempty"`
	Preferences      []string `json:"preferences,omitempty"`
}

// UpdateBlogInput is a partial update. id and createdAt are not updatable.
type UpdateBlogInput struct {
	Title            Optional[string]   `json:"title"`
	Content          Optional[string]   `json:"content"`
	Author           Optional[string]   `json:"author"`
	BannerImage      Optional[string]   `json:"bannerImage"`
	Featured         Optional[bool]     `json:"featured"`
	FeaturedDoctorID Optional[string]   `json:"featuredDoctorId"`
	Preferences      Optional[[]string] `json:"preferences"`
}
