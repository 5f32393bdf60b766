// Package blogs implements the blog post store on top of a JSON collection file.
package blogs

import (
	"fmt"
	"time"

	"github.com/klowq/admin-dashboard/internal/filestore"
	"github.com/klowq/admin-dashboard/internal/ids"
	"github.com/klowq/admin-dashboard/internal/models"
)

// FileName is the collection file inside the data directory.
const FileName = "blogs.json"

// Store provides CRUD over blogs.json. Every operation re-reads the file;
// mutations hold the collection lock for the whole read-modify-write.
type Store struct {
	col *filestore.Collection[models.Blog]
	now func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(dataDir string, opts ...Option) *Store {
	s := &Store{
		col: filestore.New[models.Blog](dataDir, FileName),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Path returns the backing file.
func (s *Store) Path() string { return s.col.Path() }

func (s *Store) load() ([]models.Blog, error) {
	list, err := s.col.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load blogs: %w", err)
	}
	for i := range list {
		if list[i].Preferences == nil {
			list[i].Preferences = []string{}
		}
	}
	return list, nil
}

func (s *Store) save(list []models.Blog) error {
	if err := s.col.SaveAll(list); err != nil {
		return fmt.Errorf("save blogs: %w", err)
	}
	return nil
}

// List returns every blog in creation order.
func (s *Store) List() ([]models.Blog, error) {
	s.col.Lock()
	defer s.col.Unlock()
	return s.load()
}

// Get returns the blog with the given id or models.ErrNotFound.
func (s *Store) Get(id string) (*models.Blog, error) {
	list, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			b := list[i]
			return &b, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create appends a new blog and returns it with the assigned fields.
func (s *Store) Create(in models.CreateBlogInput) (*models.Blog, error) {
	s.col.Lock()
	defer s.col.Unlock()
	list, err := s.load()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	b := models.Blog{
		ID:               ids.Millis(now) + ids.Suffix(9),
		Title:            in.Title,
		Content:          in.Content,
		Author:           in.Author,
		BannerImage:      in.BannerImage,
		FeaturedDoctorID: in.FeaturedDoctorID,
		Preferences:      []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.Featured != nil {
		b.Featured = *in.Featured
	}
	if in.Preferences != nil {
		b.Preferences = append([]string{}, in.Preferences...)
	}
	list = append(list, b)
	if err := s.save(list); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update merges the fields present in in over the stored blog.
func (s *Store) Update(id string, in models.UpdateBlogInput) (*models.Blog, error) {
	s.col.Lock()
	defer s.col.Unlock()
	list, err := s.load()
	if err != nil {
		return nil, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return nil, models.ErrNotFound
	}
	b := list[idx]
	b.Title = in.Title.Or(b.Title)
	b.Content = in.Content.Or(b.Content)
	b.Author = in.Author.Or(b.Author)
	b.BannerImage = in.BannerImage.Or(b.BannerImage)
	b.Featured = in.Featured.Or(b.Featured)
	b.FeaturedDoctorID = in.FeaturedDoctorID.Or(b.FeaturedDoctorID)
	if in.Preferences.Set {
		b.Preferences = append([]string{}, in.Preferences.Value...)
	}
	b.UpdatedAt = advance(b.UpdatedAt, s.now().UTC())
	list[idx] = b
	if err := s.save(list); err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes the blog with the given id.
func (s *Store) Delete(id string) error {
	s.col.Lock()
	defer s.col.Unlock()
	list, err := s.load()
	if err != nil {
		return err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return models.ErrNotFound
	}
	list = append(list[:idx], list[idx+1:]...)
	return s.save(list)
}

func indexOf(list []models.Blog, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// advance keeps updatedAt non-decreasing when the clock steps backwards.
func advance(prev, now time.Time) time.Time {
	if now.Before(prev) {
		return prev
	}
	return now
}
