package comcigan

import (
	"context"
	"errors"

	"comcigan-server/models"
)

var (
	ErrEmptyKeyword          = errors.New("search keyword is empty")
	ErrNoSchoolFound         = errors.New("no school matched the keyword")
	ErrTeacherEndpointNotSet = errors.New("teacher timetable endpoint is not configured")
)

// ComciganAPI defines the interface for interacting with the timetable service
type ComciganAPI interface {
	SearchSchools(ctx context.Context, keyword string) ([]models.School, error)
	GetTimetablePayload(ctx context.Context, schoolCode int) (*models.RawSchedulePayload, error)
	GetTeacherTimetablePayload(ctx context.Context, schoolCode int) (*models.RawSchedulePayload, error)
}

// Endpoint holds the request parameters the service embeds in its pages.
type Endpoint struct {
	// RequestCode is the path of the data script, e.g. "36179".
	RequestCode string
	// SearchCode prefixes the escaped keyword of a school search. Only the
	// student endpoint serves searches.
	SearchCode string
	// ScPrefix and ScSuffix wrap the school code in a timetable request.
	ScPrefix string
	ScSuffix string
}
