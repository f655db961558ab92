package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sd-cms-api/internal/models"
)

func TestEventsFixtures(t *testing.T) {
	events := Events()
	require.NotEmpty(t, events)
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Title)
		require.NotNil(t, e.Order)
	}
}

func TestEventsReturnsFreshCopies(t *testing.T) {
	first := Events()
	first[0].Title = "mutated"

	second := Events()
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestAnnouncementFixtures(t *testing.T) {
	announcements := Announcements()
	require.NotEmpty(t, announcements)
	for _, a := range announcements {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Title)
	}
}

func TestStaffFixtures(t *testing.T) {
	principal := Principal()
	assert.NotEmpty(t, principal.Name)

	teachers := Teachers()
	require.NotEmpty(t, teachers)
	known := make(map[string]bool, len(models.GradeLevels))
	for _, g := range models.GradeLevels {
		known[g] = true
	}
	for _, teacher := range teachers {
		assert.NotEmpty(t, teacher.ID)
		assert.True(t, known[teacher.GradeLevel], "unknown grade %q", teacher.GradeLevel)
	}
}
