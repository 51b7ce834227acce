// models/school_search_response.go
package models

import (
	"encoding/json"
	"fmt"
)

const KeySchoolSearch = "학교검색"

// School is one row of a school keyword search.
type School struct {
	ResType    int    `json:"res_type"`
	Region     string `json:"region"`
	SchoolName string `json:"school_name"`
	SchoolCode int    `json:"school_code"`
}

func (s *School) ToString() string {
	return fmt.Sprintf("School(name=%s, region=%s, code=%d)", s.SchoolName, s.Region, s.SchoolCode)
}

// SchoolSearchResponse is the search endpoint document. Rows arrive as
// positional arrays: [resType, region, name, code].
type SchoolSearchResponse struct {
	Schools []School `json:"-"`
}

func (r *SchoolSearchResponse) UnmarshalJSON(data []byte) error {
	aux := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	raw, ok := aux[KeySchoolSearch]
	if !ok {
		return fmt.Errorf("search response has no %q key", KeySchoolSearch)
	}
	v, err := decodeLoose(raw)
	if err != nil {
		return err
	}
	rows, _ := v.([]any)
	r.Schools = make([]School, 0, len(rows))
	for _, row := range rows {
		cols, ok := row.([]any)
		if !ok || len(cols) < 4 {
			continue
		}
		r.Schools = append(r.Schools, School{
			ResType:    toInt(cols[0]),
			Region:     toString(cols[1]),
			SchoolName: toString(cols[2]),
			SchoolCode: toInt(cols[3]),
		})
	}
	return nil
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	}
	return ""
}
