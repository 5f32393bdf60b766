package doctors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/stretchr/testify/require"
)

const roster = `[
  {"id":"d1","name":"Dr. Amara Okafor","specialization":"Cardiology","title":"Consultant","blogCount":4,"status":"Verified"},
  {"id":"d2","name":"Dr. Lee Chen","specialization":"Dermatology","title":"Registrar","blogCount":0,"status":"Pending"},
  {"id":"d3","name":"Dr. Sara Nunez","specialization":"Pediatric Cardiology","title":"Consultant","blogCount":2,"status":"In Review"}
]`

func TestList_MissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	l := NewLoader(dir)
	list, err := l.List()
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
	// the data directory is created lazily
	st, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, st.IsDir())
}

func TestList_CorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not json"), 0o644))
	list, err := NewLoader(dir).List()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestList_ReadsRoster(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(roster), 0o644))
	list, err := NewLoader(dir).List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Dr. Amara Okafor", list[0].Name)
	require.Equal(t, 4, list[0].BlogCount)
	require.Equal(t, models.DoctorInReview, list[2].Status)
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	n, err := Import(dir, strings.NewReader(roster))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	list, err := NewLoader(dir).List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "d2", list[1].ID)
}

func TestImport_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad json":       `[{`,
		"missing id":     `[{"name":"x","status":"Verified"}]`,
		"missing name":   `[{"id":"1","status":"Verified"}]`,
		"unknown status": `[{"id":"1","name":"x","status":"Retired"}]`,
		"negative count": `[{"id":"1","name":"x","status":"Verified","blogCount":-1}]`,
		"duplicate id":   `[{"id":"1","name":"x","status":"Verified"},{"id":"1","name":"y","status":"Pending"}]`,
		"unknown field":  `[{"id":"1","name":"x","status":"Verified","age":40}]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := Import(dir, strings.NewReader(body))
			require.ErrorIs(t, err, models.ErrInvalidInput)
			_, statErr := os.Stat(filepath.Join(dir, FileName))
			require.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestFilterCountRecent(t *testing.T) {
	dir := t.TempDir()
	_, err := Import(dir, strings.NewReader(roster))
	require.NoError(t, err)
	list, err := NewLoader(dir).List()
	require.NoError(t, err)

	require.Len(t, Filter(list, "", ""), 3)
	require.Len(t, Filter(list, "cardio", ""), 2)
	require.Len(t, Filter(list, "CHEN", ""), 1)
	require.Len(t, Filter(list, "registrar", ""), 1)
	require.Len(t, Filter(list, "D3", ""), 1)
	require.Len(t, Filter(list, "cardio", models.DoctorVerified), 1)
	require.Empty(t, Filter(list, "", models.DoctorSuspended))

	counts := CountByStatus(list)
	require.Equal(t, 1, counts[models.DoctorVerified])
	require.Equal(t, 1, counts[models.DoctorPending])
	require.Equal(t, 1, counts[models.DoctorInReview])
	require.Equal(t, 0, counts[models.DoctorSuspended])
	require.Len(t, counts, len(models.DoctorStatuses))

	recent := Recent(list, 2)
	require.Len(t, recent, 2)
	require.Equal(t, "d3", recent[0].ID)
	require.Equal(t, "d2", recent[1].ID)
	require.Len(t, Recent(list, 10), 3)
}
