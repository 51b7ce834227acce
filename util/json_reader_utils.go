package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"comcigan-server/models"
)

// ReadSchoolSearchResponseFromJSON loads a SchoolSearchResponse from JSON on disk.
func ReadSchoolSearchResponseFromJSON(filePath string) (*models.SchoolSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SchoolSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SchoolSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadRawSchedulePayloadFromJSON loads a RawSchedulePayload from JSON on disk.
func ReadRawSchedulePayloadFromJSON(filePath string) (*models.RawSchedulePayload, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	p, err := models.ParseRawSchedulePayload(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RawSchedulePayload: %w", err)
	}
	return p, nil
}

// ReadKeywords loads a slice of search keywords from JSON on disk.
func ReadKeywords(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var keywords []string
	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	return keywords, nil
}

// LogSchoolsPartially logs key fields of the schools a keyword matched.
func LogSchoolsPartially(keyword string, schools []models.School) {
	log.Printf("[Util] %d schools found for %q", len(schools), keyword)
	for i := range schools {
		log.Printf("[Util] %s", schools[i].ToString())
	}
}
