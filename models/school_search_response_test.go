package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolSearchResponse_UnmarshalJSON(t *testing.T) {
	raw := `{"학교검색": [[24966, "대전", "서대전고등학교", 12045], ["x"], [1, "서울", "한빛고", "777"]]}`

	var resp SchoolSearchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	require.Len(t, resp.Schools, 2)
	assert.Equal(t, School{ResType: 24966, Region: "대전", SchoolName: "서대전고등학교", SchoolCode: 12045}, resp.Schools[0])
	assert.Equal(t, 777, resp.Schools[1].SchoolCode)
	assert.Equal(t, "School(name=한빛고, region=서울, code=777)", resp.Schools[1].ToString())
}

func TestSchoolSearchResponse_MissingKey(t *testing.T) {
	var resp SchoolSearchResponse
	assert.Error(t, json.Unmarshal([]byte(`{"other": []}`), &resp))
}

func TestSchoolSearchResponse_Empty(t *testing.T) {
	var resp SchoolSearchResponse
	require.NoError(t, json.Unmarshal([]byte(`{"학교검색": []}`), &resp))
	assert.Empty(t, resp.Schools)
}
