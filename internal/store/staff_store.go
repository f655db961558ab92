package store

import (
	"encoding/json"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/seed"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

const (
	principalKey        = "principal"
	teachersKey         = "teachers"
	staffInitializedKey = "staff_initialized"
)

// unknownGradeRank sorts unrecognised grade labels after every known one.
const unknownGradeRank = 999

// StaffStore manages the singleton principal record and the teacher
// roster. It is the sole writer of the staff keys.
type StaffStore struct {
	opts Options
}

// NewStaffStore builds the store.
func NewStaffStore(opts Options) *StaffStore {
	return &StaffStore{opts: opts.withDefaults()}
}

// Initialize seeds principal and teachers from bundled fixtures exactly
// once, guarded by a flag key. Unlike the event store there is no version
// path: once initialized, fixture changes never propagate.
func (s *StaffStore) Initialize() error {
	if _, ok := s.opts.KV.Get(staffInitializedKey); ok {
		return nil
	}

	principal, err := json.Marshal(seed.Principal())
	if err != nil {
		return err
	}
	teachers, err := json.Marshal(seed.Teachers())
	if err != nil {
		return err
	}
	if err := s.opts.KV.Set(principalKey, string(principal)); err != nil {
		return err
	}
	if err := s.opts.KV.Set(teachersKey, string(teachers)); err != nil {
		return err
	}
	if err := s.opts.KV.Set(staffInitializedKey, "true"); err != nil {
		return err
	}
	s.opts.Logger.Info("staff fixtures loaded")
	return nil
}

// Principal returns the singleton record, or nil when absent or corrupt.
func (s *StaffStore) Principal() *models.Principal {
	raw, ok := s.opts.KV.Get(principalKey)
	if !ok {
		return nil
	}
	var principal models.Principal
	if err := json.Unmarshal([]byte(raw), &principal); err != nil {
		s.opts.Logger.Error("corrupt principal record", zap.Error(err))
		return nil
	}
	return &principal
}

// SavePrincipal replaces the singleton record and publishes a staff change
// signal. A nil principal is rejected with a warning and no write: the
// principal can be updated but never deleted.
func (s *StaffStore) SavePrincipal(principal *models.Principal) error {
	if principal == nil {
		s.opts.Logger.Warn("refusing to delete principal, pass a record to update instead")
		return nil
	}
	raw, err := json.Marshal(principal)
	if err != nil {
		s.opts.Logger.Error("encode principal", zap.Error(err))
		return err
	}
	if err := s.opts.KV.Set(principalKey, string(raw)); err != nil {
		s.warnWrite("principal", err)
		s.opts.Observe("staff", "save_principal", err)
		return err
	}
	s.opts.Observe("staff", "save_principal", nil)
	s.opts.Bus.Publish(bus.TopicStaff)
	return nil
}

// Teachers returns the roster. Missing or corrupt data yields an empty
// slice, never an error.
func (s *StaffStore) Teachers() []models.Teacher {
	raw, ok := s.opts.KV.Get(teachersKey)
	if !ok {
		return []models.Teacher{}
	}
	var teachers []models.Teacher
	if err := json.Unmarshal([]byte(raw), &teachers); err != nil {
		s.opts.Logger.Error("corrupt teacher roster, treating as empty", zap.Error(err))
		return []models.Teacher{}
	}
	return teachers
}

// SaveTeachers writes the full roster atomically and publishes a staff
// change signal on success.
func (s *StaffStore) SaveTeachers(teachers []models.Teacher) error {
	raw, err := json.Marshal(teachers)
	if err != nil {
		s.opts.Logger.Error("encode teacher roster", zap.Error(err))
		return err
	}
	if err := s.opts.KV.Set(teachersKey, string(raw)); err != nil {
		s.warnWrite("teachers", err)
		s.opts.Observe("staff", "save_teachers", err)
		return err
	}
	s.opts.Observe("staff", "save_teachers", nil)
	s.opts.Bus.Publish(bus.TopicStaff)
	return nil
}

// AddTeacher appends a new roster entry with a fresh identity and stamped
// timestamps.
func (s *StaffStore) AddTeacher(input models.Teacher) (models.Teacher, error) {
	teachers := s.Teachers()

	now := s.opts.Now()
	input.ID = s.opts.NewID()
	input.CreatedAt = now
	input.UpdatedAt = now

	teachers = append(teachers, input)
	if err := s.SaveTeachers(teachers); err != nil {
		return models.Teacher{}, err
	}
	return input, nil
}

// UpdateTeacher merges the patch over the teacher with the given id and
// refreshes its updated_at stamp. A missing id is a benign miss reported
// as (nil, nil).
func (s *StaffStore) UpdateTeacher(id string, patch models.TeacherPatch) (*models.Teacher, error) {
	teachers := s.Teachers()
	for i := range teachers {
		if teachers[i].ID != id {
			continue
		}
		patch.Apply(&teachers[i])
		teachers[i].UpdatedAt = s.opts.Now()
		if err := s.SaveTeachers(teachers); err != nil {
			return nil, err
		}
		updated := teachers[i]
		return &updated, nil
	}
	return nil, nil
}

// DeleteTeacher removes the teacher with the given id. The bool reports
// whether anything was removed.
func (s *StaffStore) DeleteTeacher(id string) (bool, error) {
	teachers := s.Teachers()
	filtered := teachers[:0:0]
	for _, t := range teachers {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == len(teachers) {
		return false, nil
	}
	if err := s.SaveTeachers(filtered); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StaffStore) warnWrite(key string, err error) {
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		s.opts.Logger.Warn("storage quota exceeded", zap.String("key", key))
		return
	}
	s.opts.Logger.Error("persist staff data", zap.String("key", key), zap.Error(err))
}

var gradeRank = func() map[string]int {
	ranks := make(map[string]int, len(models.GradeLevels))
	for i, level := range models.GradeLevels {
		ranks[level] = i
	}
	return ranks
}()

// SortTeachersByGrade returns a copy of the roster ordered Kindergarten
// through Grade 6, with unrecognised grade labels last. The sort is
// stable: ties keep their input order. The input is not mutated and
// nothing is persisted.
func SortTeachersByGrade(teachers []models.Teacher) []models.Teacher {
	sorted := make([]models.Teacher, len(teachers))
	copy(sorted, teachers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankOf(sorted[i].GradeLevel) < rankOf(sorted[j].GradeLevel)
	})
	return sorted
}

func rankOf(grade string) int {
	if rank, ok := gradeRank[grade]; ok {
		return rank
	}
	return unknownGradeRank
}
