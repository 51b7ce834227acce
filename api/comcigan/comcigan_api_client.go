package comcigan

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"comcigan-server/api"
	"comcigan-server/models"
)

// ComciganApiClient embeds the common HTTPClient
type ComciganApiClient struct {
	*api.HTTPClient
	endpoint Endpoint

	teacherClient   *api.HTTPClient
	teacherEndpoint Endpoint
}

// NewComciganApiClient creates a client for the student-facing service.
func NewComciganApiClient(httpClient *api.HTTPClient, endpoint Endpoint) *ComciganApiClient {
	return &ComciganApiClient{
		HTTPClient: httpClient,
		endpoint:   endpoint,
	}
}

// SetTeacherEndpoint configures the teacher-facing service, which lives on
// its own host.
func (c *ComciganApiClient) SetTeacherEndpoint(httpClient *api.HTTPClient, endpoint Endpoint) {
	c.teacherClient = httpClient
	c.teacherEndpoint = endpoint
}

// SearchSchools looks schools up by keyword.
func (c *ComciganApiClient) SearchSchools(ctx context.Context, keyword string) ([]models.School, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	escaped, err := api.EncodeEUCKR(keyword)
	if err != nil {
		return nil, err
	}

	var response models.SchoolSearchResponse
	endpoint := fmt.Sprintf("/%s?%s%s", c.endpoint.RequestCode, c.endpoint.SearchCode, escaped)
	if err := c.Request(ctx, "GET", endpoint, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("search schools %q: %w", keyword, err)
	}

	if len(response.Schools) == 0 {
		return nil, fmt.Errorf("search schools %q: %w", keyword, ErrNoSchoolFound)
	}
	log.Printf("[ComciganApiClient] Search %q returned %d schools", keyword, len(response.Schools))
	return response.Schools, nil
}

// GetTimetablePayload fetches the class timetable payload of a school.
func (c *ComciganApiClient) GetTimetablePayload(ctx context.Context, schoolCode int) (*models.RawSchedulePayload, error) {
	return fetchPayload(ctx, c.HTTPClient, c.endpoint, schoolCode)
}

// GetTeacherTimetablePayload fetches the payload of the teacher service.
func (c *ComciganApiClient) GetTeacherTimetablePayload(ctx context.Context, schoolCode int) (*models.RawSchedulePayload, error) {
	if c.teacherClient == nil {
		return nil, ErrTeacherEndpointNotSet
	}
	return fetchPayload(ctx, c.teacherClient, c.teacherEndpoint, schoolCode)
}

func fetchPayload(ctx context.Context, client *api.HTTPClient, e Endpoint, schoolCode int) (*models.RawSchedulePayload, error) {
	endpoint := fmt.Sprintf("/%s?%s", e.RequestCode, timetableParam(e, schoolCode))
	body, err := client.RequestRaw(ctx, "GET", endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch timetable of school %d: %w", schoolCode, err)
	}

	payload, err := models.ParseRawSchedulePayload(api.TrimJSON(body))
	if err != nil {
		return nil, fmt.Errorf("parse timetable of school %d: %w", schoolCode, err)
	}
	return payload, nil
}

// timetableParam is base64("<prefix><school>_0_<suffix>").
func timetableParam(e Endpoint, schoolCode int) string {
	raw := fmt.Sprintf("%s%d_0_%s", e.ScPrefix, schoolCode, e.ScSuffix)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
