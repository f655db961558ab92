package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/seed"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

func newStaffStore(t *testing.T, kv kvstore.Store) *StaffStore {
	t.Helper()
	seq := 0
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return NewStaffStore(Options{
		KV:  kv,
		Bus: bus.New(),
		Now: func() time.Time {
			seq++
			return base.Add(time.Duration(seq) * time.Second)
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("teacher-%d", seq)
		},
	})
}

func TestStaffInitializeSeedsOnce(t *testing.T) {
	kv := kvstore.NewMemory()
	s := newStaffStore(t, kv)
	require.NoError(t, s.Initialize())

	principal := s.Principal()
	require.NotNil(t, principal)
	assert.Equal(t, seed.Principal(), *principal)
	assert.Equal(t, seed.Teachers(), s.Teachers())

	flag, ok := kv.Get("staff_initialized")
	require.True(t, ok)
	assert.Equal(t, "true", flag)

	// Unlike events there is no version path: edits survive re-runs.
	_, err := s.AddTeacher(models.Teacher{Name: "New Hire"})
	require.NoError(t, err)
	require.NoError(t, s.Initialize())
	assert.Len(t, s.Teachers(), len(seed.Teachers())+1)
}

func TestPrincipalGetMissingReturnsNil(t *testing.T) {
	s := newStaffStore(t, kvstore.NewMemory())
	assert.Nil(t, s.Principal())
}

func TestSavePrincipalReplacesInPlace(t *testing.T) {
	s := newStaffStore(t, kvstore.NewMemory())
	require.NoError(t, s.SavePrincipal(&models.Principal{Name: "Dr. First"}))
	require.NoError(t, s.SavePrincipal(&models.Principal{Name: "Dr. Second", Title: "Principal"}))

	principal := s.Principal()
	require.NotNil(t, principal)
	assert.Equal(t, "Dr. Second", principal.Name)
}

func TestSavePrincipalRejectsNil(t *testing.T) {
	kv := kvstore.NewMemory()
	s := newStaffStore(t, kv)
	require.NoError(t, s.SavePrincipal(&models.Principal{Name: "Dr. Keep"}))

	// Deletion is not a supported operation; the call is a no-op.
	require.NoError(t, s.SavePrincipal(nil))
	principal := s.Principal()
	require.NotNil(t, principal)
	assert.Equal(t, "Dr. Keep", principal.Name)
}

func TestTeacherCRUD(t *testing.T) {
	s := newStaffStore(t, kvstore.NewMemory())

	added, err := s.AddTeacher(models.Teacher{Name: "Mr. New", GradeLevel: models.Grade2})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	assert.False(t, added.UpdatedAt.Before(added.CreatedAt))

	subject := "Mathematics"
	updated, err := s.UpdateTeacher(added.ID, models.TeacherPatch{Subject: &subject})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Mathematics", updated.Subject)
	assert.True(t, updated.UpdatedAt.After(added.UpdatedAt))

	missing, err := s.UpdateTeacher("no-such-id", models.TeacherPatch{Subject: &subject})
	require.NoError(t, err)
	assert.Nil(t, missing)

	removed, err := s.DeleteTeacher(added.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteTeacher(added.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSaveTeachersPublishesStaffSignal(t *testing.T) {
	b := bus.New()
	s := NewStaffStore(Options{KV: kvstore.NewMemory(), Bus: b})

	var signals int
	sub := b.Subscribe(bus.TopicStaff, func() { signals++ })
	defer sub.Cancel()

	require.NoError(t, s.SaveTeachers([]models.Teacher{}))
	require.NoError(t, s.SavePrincipal(&models.Principal{Name: "Dr. X"}))
	assert.Equal(t, 2, signals)
}

func TestSortTeachersByGrade(t *testing.T) {
	input := []models.Teacher{
		{ID: "1", GradeLevel: models.Grade3},
		{ID: "2", GradeLevel: models.GradeKindergarten},
		{ID: "3", GradeLevel: "Unknown"},
		{ID: "4", GradeLevel: models.Grade1},
	}

	sorted := SortTeachersByGrade(input)

	got := make([]string, 0, len(sorted))
	for _, teacher := range sorted {
		got = append(got, teacher.GradeLevel)
	}
	assert.Equal(t, []string{models.GradeKindergarten, models.Grade1, models.Grade3, "Unknown"}, got)

	// Pure function: input order untouched.
	assert.Equal(t, models.Grade3, input[0].GradeLevel)
}

func TestSortTeachersByGradeIsStable(t *testing.T) {
	input := []models.Teacher{
		{ID: "a", GradeLevel: models.Grade4},
		{ID: "b", GradeLevel: models.Grade4},
		{ID: "c", GradeLevel: "Art Studio"},
		{ID: "d", GradeLevel: "Music Room"},
	}

	sorted := SortTeachersByGrade(input)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	// Both unknown labels rank 999 and keep their input order.
	assert.Equal(t, "c", sorted[2].ID)
	assert.Equal(t, "d", sorted[3].ID)
}
