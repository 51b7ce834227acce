package comcigan

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"comcigan-server/config"
	"comcigan-server/models"
	"comcigan-server/util"
)

// ComciganApiClientMock serves recorded responses from the resources directory.
type ComciganApiClientMock struct {
	resourcesDir string
}

// NewComciganApiClientMock creates a mock reading fixtures from resourcesDir.
func NewComciganApiClientMock(resourcesDir string) *ComciganApiClientMock {
	return &ComciganApiClientMock{resourcesDir: resourcesDir}
}

// SearchSchools returns the recorded search result for any non-empty keyword.
func (c *ComciganApiClientMock) SearchSchools(ctx context.Context, keyword string) ([]models.School, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}

	response, err := util.ReadSchoolSearchResponseFromJSON(c.path(config.SCHOOL_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		log.Printf("[ComciganApiClientMock] Could not read school search response: %v", err)
		return nil, err
	}
	if len(response.Schools) == 0 {
		return nil, fmt.Errorf("search schools %q: %w", keyword, ErrNoSchoolFound)
	}
	return response.Schools, nil
}

// GetTimetablePayload returns the recorded payload regardless of the school.
func (c *ComciganApiClientMock) GetTimetablePayload(ctx context.Context, schoolCode int) (*models.RawSchedulePayload, error) {
	return c.readPayload()
}

// GetTeacherTimetablePayload returns the same recorded payload, which also
// carries the teacher tables.
func (c *ComciganApiClientMock) GetTeacherTimetablePayload(ctx context.Context, schoolCode int) (*models.RawSchedulePayload, error) {
	return c.readPayload()
}

func (c *ComciganApiClientMock) readPayload() (*models.RawSchedulePayload, error) {
	payload, err := util.ReadRawSchedulePayloadFromJSON(c.path(config.TIMETABLE_RESPONSE_RESOURCE))
	if err != nil {
		log.Printf("[ComciganApiClientMock] Could not read timetable response: %v", err)
		return nil, err
	}
	return payload, nil
}

func (c *ComciganApiClientMock) path(resource string) string {
	return filepath.Join(c.resourcesDir, resource)
}
