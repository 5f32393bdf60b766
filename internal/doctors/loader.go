// Package doctors reads the doctor roster. The dashboard never edits it; the
// file is populated by Import (dashboardctl) or by hand.
package doctors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klowq/admin-dashboard/internal/filestore"
	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/pkg/logger"
)

const FileName = "doctors.json"

type Loader struct {
	col *filestore.Collection[models.Doctor]
}

func NewLoader(dataDir string) *Loader {
	return &Loader{col: filestore.New[models.Doctor](dataDir, FileName)}
}

func (l *Loader) Path() string { return l.col.Path() }

// List returns the roster in file order. A missing or unreadable file yields
// an empty roster.
func (l *Loader) List() ([]models.Doctor, error) {
	if err := l.col.EnsureDir(); err != nil {
		logger.Warnf("doctors: %v", err)
	}
	list, err := l.col.LoadAll()
	if err != nil {
		logger.Warnf("doctors: treating roster as empty: %v", err)
		return []models.Doctor{}, nil
	}
	return list, nil
}

// Import validates a JSON array of doctors read from r and replaces the roster
// with it. It returns the number of records written.
func Import(dataDir string, r io.Reader) (int, error) {
	var list []models.Doctor
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&list); err != nil {
		return 0, fmt.Errorf("%w: decode doctors: %v", models.ErrInvalidInput, err)
	}
	seen := make(map[string]bool, len(list))
	for i, d := range list {
		switch {
		case strings.TrimSpace(d.ID) == "":
			return 0, fmt.Errorf("%w: doctor #%d has no id", models.ErrInvalidInput, i)
		case strings.TrimSpace(d.Name) == "":
			return 0, fmt.Errorf("%w: doctor %s has no name", models.ErrInvalidInput, d.ID)
		case !d.Status.Valid():
			return 0, fmt.Errorf("%w: doctor %s has unknown status %q", models.ErrInvalidInput, d.ID, d.Status)
		case d.BlogCount < 0:
			return 0, fmt.Errorf("%w: doctor %s has negative blogCount", models.ErrInvalidInput, d.ID)
		case seen[d.ID]:
			return 0, fmt.Errorf("%w: duplicate doctor id %s", models.ErrInvalidInput, d.ID)
		}
		seen[d.ID] = true
	}
	col := filestore.New[models.Doctor](dataDir, FileName)
	col.Lock()
	defer col.Unlock()
	if err := col.SaveAll(list); err != nil {
		return 0, fmt.Errorf("save doctors: %w", err)
	}
	return len(list), nil
}

// Filter returns the doctors whose id, name, specialization or title contains
// query (ignoring case) and whose status equals status. Empty arguments match all.
func Filter(list []models.Doctor, query string, status models.DoctorStatus) []models.Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Doctor, 0, len(list))
	for _, d := range list {
		if status != "" && d.Status != status {
			continue
		}
		if q != "" && !matches(d, q) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matches(d models.Doctor, q string) bool {
	for _, f := range []string{d.ID, d.Name, d.Specialization, d.Title} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// CountByStatus tallies the roster per status; every known status is present.
func CountByStatus(list []models.Doctor) map[models.DoctorStatus]int {
	out := make(map[models.DoctorStatus]int, len(models.DoctorStatuses))
	for _, s := range models.DoctorStatuses {
		out[s] = 0
	}
	for _, d := range list {
		out[d.Status]++
	}
	return out
}

// Recent returns up to n doctors, most recently added first.
func Recent(list []models.Doctor, n int) []models.Doctor {
	out := make([]models.Doctor, 0, n)
	for i := len(list) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, list[i])
	}
	return out
}
