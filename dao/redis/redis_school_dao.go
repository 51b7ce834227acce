package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"comcigan-server/db"
	"comcigan-server/models"
)

const SCHOOL_SEARCH_KEY_PREFIX_V1 = "school_search_v1:"
const SCHOOL_SEARCH_KEY_FORMAT_V1 = SCHOOL_SEARCH_KEY_PREFIX_V1 + "%s"

// RedisSchoolDAO caches school search results by keyword.
type RedisSchoolDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisSchoolDAO initializes a RedisSchoolDAO. Entries expire after ttl.
func NewRedisSchoolDAO(client db.RedisClient, ttl time.Duration) *RedisSchoolDAO {
	return &RedisSchoolDAO{client: client, ttl: ttl}
}

// NormalizeKeyword is the form keywords are cached under.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

func schoolSearchKey(keyword string) string {
	return fmt.Sprintf(SCHOOL_SEARCH_KEY_FORMAT_V1, NormalizeKeyword(keyword))
}

// SetSchools caches the search result of a keyword.
func (dao *RedisSchoolDAO) SetSchools(keyword string, schools []models.School) error {
	data, err := json.Marshal(schools)
	if err != nil {
		return fmt.Errorf("failed to marshal schools for %q: %w", keyword, err)
	}
	if err := dao.client.Set(schoolSearchKey(keyword), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set schools in redis: %w", err)
	}
	return nil
}

// GetSchools returns the cached result of a keyword, or nil on a cache miss.
func (dao *RedisSchoolDAO) GetSchools(keyword string) ([]models.School, error) {
	str, err := dao.client.Get(schoolSearchKey(keyword))
	if err != nil {
		if errors.Is(err, db.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schools from redis: %w", err)
	}
	var schools []models.School
	if err := json.Unmarshal([]byte(str), &schools); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schools JSON: %w", err)
	}
	return schools, nil
}

// ListCachedKeywords returns the keywords that currently have a cached result.
func (dao *RedisSchoolDAO) ListCachedKeywords() ([]string, error) {
	keys, err := dao.client.Keys(SCHOOL_SEARCH_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list school search keys: %w", err)
	}
	keywords := make([]string, 0, len(keys))
	for _, k := range keys {
		keywords = append(keywords, strings.TrimPrefix(k, SCHOOL_SEARCH_KEY_PREFIX_V1))
	}
	return keywords, nil
}

func (dao *RedisSchoolDAO) DeleteSchools(keyword string) error {
	key := schoolSearchKey(keyword)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete school search key %s: %w", key, err)
	}
	log.Printf("[RedisSchoolDAO] Deleted school search cache for %q", keyword)
	return nil
}
