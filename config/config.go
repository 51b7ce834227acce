package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Server config
const SERVER_ADDRESS = ":8080"
const SERVER_SHUTDOWN_TIMEOUT_SECONDS = 5

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// School directory cache
// 7 Days: 60*24*7
const SCHOOL_SEARCH_CACHE_TTL_MINUTES = 60 * 24 * 7

// School directory refresher config, standard cron spec
const SCHOOL_DIRECTORY_REFRESHER_CRON = "0 4 * * *"

// Student service endpoint. The service rotates its codes; each one can be
// overridden from the environment without a rebuild.
const COMCIGAN_ENDPOINT_BASE = "http://comci.net:4082"
const COMCIGAN_REQUEST_CODE = "36179"
const COMCIGAN_SEARCH_CODE = "17384l"
const COMCIGAN_SC_PREFIX = "73629_"
const COMCIGAN_SC_SUFFIX = "1"

// Teacher service endpoint. Its host and codes change between deployments
// and have no stable default; the teacher view stays disabled until
// COMCIGAN_TEACHER_BASE is set.
const COMCIGAN_TEACHER_ENDPOINT_BASE = ""
const COMCIGAN_TEACHER_REQUEST_CODE = ""
const COMCIGAN_TEACHER_SC_PREFIX = ""
const COMCIGAN_TEACHER_SC_SUFFIX = "1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SCHOOL_SEARCH_RESPONSE_RESOURCE = "school_search_response.json"
const TIMETABLE_RESPONSE_RESOURCE = "timetable_response.json"
const WARM_KEYWORDS_RESOURCE = "warm_keywords.json"

// Environment variable names
const ENV_APP_ENV = "APP_ENV"
const ENV_SERVER_ADDRESS = "SERVER_ADDRESS"
const ENV_REDIS_ADDRESS = "REDIS_ADDRESS"
const ENV_REDIS_PASSWORD = "REDIS_PASSWORD"
const ENV_REDIS_DB = "REDIS_DB"
const ENV_COMCIGAN_BASE = "COMCIGAN_BASE"
const ENV_COMCIGAN_REQUEST_CODE = "COMCIGAN_REQUEST_CODE"
const ENV_COMCIGAN_SEARCH_CODE = "COMCIGAN_SEARCH_CODE"
const ENV_COMCIGAN_SC_PREFIX = "COMCIGAN_SC_PREFIX"
const ENV_COMCIGAN_SC_SUFFIX = "COMCIGAN_SC_SUFFIX"
const ENV_COMCIGAN_TEACHER_BASE = "COMCIGAN_TEACHER_BASE"
const ENV_COMCIGAN_TEACHER_REQUEST_CODE = "COMCIGAN_TEACHER_REQUEST_CODE"
const ENV_COMCIGAN_TEACHER_SC_PREFIX = "COMCIGAN_TEACHER_SC_PREFIX"
const ENV_COMCIGAN_TEACHER_SC_SUFFIX = "COMCIGAN_TEACHER_SC_SUFFIX"
const ENV_REFRESHER_CRON = "SCHOOL_DIRECTORY_REFRESHER_CRON"

// LoadEnv reads a .env file into the process environment. A missing file
// is not an error; values already set in the environment win.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[Config] No .env loaded: %v", err)
	}
}

// GetEnv returns the value of key or def when unset.
func GetEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetEnvInt is GetEnv for integers. Unparsable values fall back to def.
func GetEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
