package domain

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	t.Parallel()

	before := time.Now().UnixMilli()
	p, err := NewProject("  Cell Biology ", "\nMitochondria produce ATP.  ")
	require.NoError(t, err)

	assert.Equal(t, "Cell Biology", p.Title)
	assert.Equal(t, "Mitochondria produce ATP.", p.StudyMaterial)
	assert.GreaterOrEqual(t, p.ID, before)
	assert.NoError(t, p.Validate())
	assert.WithinDuration(t, time.Now(), p.CreatedAt(), time.Minute)
}

func TestNewProjectRejectsEmptyFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title    string
		material string
	}{
		{"", "material"},
		{"   ", "material"},
		{"title", ""},
		{"title", "\t\n"},
		{"", ""},
	}

	for _, tc := range tests {
		p, err := NewProject(tc.title, tc.material)
		assert.ErrorIs(t, err, ErrEmptyTitleOrMaterial)
		assert.Nil(t, p)
	}
}

func TestNewProjectTitleLength(t *testing.T) {
	t.Parallel()

	_, err := NewProject(strings.Repeat("é", MaxTitleLength), "material")
	assert.NoError(t, err)

	_, err = NewProject(strings.Repeat("a", MaxTitleLength+1), "material")
	assert.ErrorIs(t, err, ErrTitleTooLong)
}

func TestProjectIDsAreStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	const n = 200
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := NewProject("t", "m")
			if err == nil {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	now := time.Now()
	first := nextProjectID(now)
	second := nextProjectID(now)
	assert.Greater(t, second, first)
}

func TestProjectValidate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Project{Title: "t", StudyMaterial: "m"}.Validate(), ErrValidation)
	assert.ErrorIs(t, Project{ID: 1, StudyMaterial: "m"}.Validate(), ErrEmptyTitleOrMaterial)
	assert.NoError(t, Project{ID: 1, Title: "t", StudyMaterial: "m"}.Validate())
}

func TestProjectPreview(t *testing.T) {
	t.Parallel()

	short := Project{StudyMaterial: "short text"}
	assert.Equal(t, "short text", short.Preview(0))

	long := Project{StudyMaterial: strings.Repeat("x", 130)}
	assert.Equal(t, strings.Repeat("x", DefaultPreviewLength)+"...", long.Preview(0))
	assert.Equal(t, "xxxxx...", long.Preview(5))
}
