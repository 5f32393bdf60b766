// Package preferences implements the content-category store. Names are unique
// ignoring case, and an empty collection is seeded with Defaults.
package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/klowq/admin-dashboard/internal/filestore"
	"github.com/klowq/admin-dashboard/internal/ids"
	"github.com/klowq/admin-dashboard/internal/models"
)

const FileName = "preferences.json"

type Store struct {
	col      *filestore.Collection[models.Preference]
	now      func() time.Time
	defaults []string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDefaults replaces the seed list.
func WithDefaults(names []string) Option {
	return func(s *Store) { s.defaults = names }
}

func NewStore(dataDir string, opts ...Option) *Store {
	s := &Store{
		col:      filestore.New[models.Preference](dataDir, FileName),
		now:      time.Now,
		defaults: Defaults,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Path() string { return s.col.Path() }

// load reads the collection, seeding and persisting the defaults when it is
// absent or empty. Callers hold the collection lock.
func (s *Store) load() ([]models.Preference, error) {
	list, err := s.col.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if len(list) > 0 {
		return list, nil
	}
	now := s.now().UTC()
	stamp := ids.Millis(now)
	seeded := make([]models.Preference, 0, len(s.defaults))
	for i, name := range s.defaults {
		seeded = append(seeded, models.Preference{
			ID:        "pref-" + stamp + "-" + strconv.Itoa(i),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := s.save(seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

func (s *Store) save(list []models.Preference) error {
	if err := s.col.SaveAll(list); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// List returns every preference, seeding the defaults on first use.
func (s *Store) List() ([]models.Preference, error) {
	s.col.Lock()
	defer s.col.Unlock()
	return s.load()
}

// Seed makes sure the collection is seeded and returns it.
func (s *Store) Seed() ([]models.Preference, error) {
	return s.List()
}

func (s *Store) Get(id string) (*models.Preference, error) {
	list, err := s.List()
	if err != nil {
		return nil, err
	}
	if i := indexOf(list, id); i >= 0 {
		p := list[i]
		return &p, nil
	}
	return nil, models.ErrNotFound
}

// Create adds a preference. The name is trimmed; it must be non-empty and must
// not match an existing name ignoring case.
func (s *Store) Create(in models.CreatePreferenceInput) (*models.Preference, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	s.col.Lock()
	defer s.col.Unlock()
	list, err := s.load()
	if err != nil {
		return nil, err
	}
	if taken(list, name, -1) {
		return nil, models.ErrDuplicateName
	}
	now := s.now().UTC()
	p := models.Preference{
		ID:        "pref-" + ids.Millis(now) + "-" + ids.Suffix(9),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	list = append(list, p)
	if err := s.save(list); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies in to the preference with the given id. A new name is
// checked against every other record.
func (s *Store) Update(id string, in models.UpdatePreferenceInput) (*models.Preference, error) {
	var name string
	if in.Name.Set {
		n, err := normalizeName(in.Name.Value)
		if err != nil {
			return nil, err
		}
		name = n
	}
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
	p := list[idx]
	if in.Name.Set {
		if taken(list, name, idx) {
			return nil, models.ErrDuplicateName
		}
		p.Name = name
	}
	now := s.now().UTC()
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
	list[idx] = p
	if err := s.save(list); err != nil {
		return nil, err
	}
	return &p, nil
}

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

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: preference name cannot be empty", models.ErrInvalidInput)
	}
	return name, nil
}

// taken reports whether name collides with any record other than skip.
func taken(list []models.Preference, name string, skip int) bool {
	for i := range list {
		if i != skip && strings.EqualFold(strings.TrimSpace(list[i].Name), name) {
			return true
		}
	}
	return false
}

func indexOf(list []models.Preference, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
