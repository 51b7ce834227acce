package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"comcigan-server/api/comcigan"
	"comcigan-server/dao/redis"
	"comcigan-server/decoder"
	"comcigan-server/models"
	"comcigan-server/models/timetable"
)

// ErrClassNotFound is returned for a grade/class outside the decoded range.
var ErrClassNotFound = errors.New("class not found in timetable")

type TimetableService struct {
	schoolDao   *redis.RedisSchoolDAO
	comciganApi comcigan.ComciganAPI
}

// NewTimetableService constructs a new TimetableService. schoolDao may be nil,
// in which case searches always go upstream.
func NewTimetableService(
	schoolDao *redis.RedisSchoolDAO,
	comciganApi comcigan.ComciganAPI) *TimetableService {

	return &TimetableService{
		schoolDao:   schoolDao,
		comciganApi: comciganApi,
	}
}

// SearchSchools serves a keyword search from the cache, falling back to the
// upstream service and caching its answer. Cache failures are logged and
// never fail the search.
func (ts *TimetableService) SearchSchools(ctx context.Context, keyword string) ([]models.School, error) {
	if ts.schoolDao != nil {
		cached, err := ts.schoolDao.GetSchools(keyword)
		if err != nil {
			log.Printf("[TimetableService] Cache read failed for %q: %v", keyword, err)
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	schools, err := ts.comciganApi.SearchSchools(ctx, keyword)
	if err != nil {
		return nil, err
	}

	if ts.schoolDao != nil {
		if err := ts.schoolDao.SetSchools(keyword, schools); err != nil {
			log.Printf("[TimetableService] Cache write failed for %q: %v", keyword, err)
		}
	}
	return schools, nil
}

// GetTimetable fetches and decodes the class-indexed timetable of a school.
func (ts *TimetableService) GetTimetable(ctx context.Context, schoolCode int) (*timetable.Timetable, error) {
	payload, err := ts.comciganApi.GetTimetablePayload(ctx, schoolCode)
	if err != nil {
		return nil, err
	}
	t, err := decoder.DecodeTimetable(payload)
	if err != nil {
		return nil, fmt.Errorf("decode timetable of school %d: %w", schoolCode, err)
	}
	return t, nil
}

// GetClassTimetable returns the week of one class.
func (ts *TimetableService) GetClassTimetable(ctx context.Context, schoolCode, grade, class int) (*timetable.ClassTimetable, error) {
	t, err := ts.GetTimetable(ctx, schoolCode)
	if err != nil {
		return nil, err
	}
	ct, ok := t.Class(grade, class)
	if !ok {
		return nil, fmt.Errorf("grade %d class %d of school %d: %w", grade, class, schoolCode, ErrClassNotFound)
	}
	return ct, nil
}

// GetTeacherTimetable fetches and decodes the teacher-indexed timetable.
func (ts *TimetableService) GetTeacherTimetable(ctx context.Context, schoolCode int) (*timetable.TeacherTimetable, error) {
	payload, err := ts.comciganApi.GetTeacherTimetablePayload(ctx, schoolCode)
	if err != nil {
		return nil, err
	}
	tt, err := decoder.DecodeTeacherTimetable(payload)
	if err != nil {
		return nil, fmt.Errorf("decode teacher timetable of school %d: %w", schoolCode, err)
	}
	return tt, nil
}
