package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"comcigan-server/api"
	"comcigan-server/api/comcigan"
	"comcigan-server/config"
	"comcigan-server/dao/redis"
	"comcigan-server/db"
	"comcigan-server/server"
	"comcigan-server/server/handlers"
	services "comcigan-server/service"
	"comcigan-server/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                     db.RedisClient
	RedisSchoolDao                  *redis.RedisSchoolDAO
	ComciganAPI                     comcigan.ComciganAPI
	TimetableService                *services.TimetableService
	TimetableHandler                *handlers.TimetableHandler
	PingHandler                     *handlers.PingHandler
	MuxRouter                       *mux.Router
	Router                          *server.Router
	ComciganHttpServer              *server.ComciganHttpServer
	SchoolDirectoryRefresherService *services.SchoolDirectoryRefresherService
}

// NewContainer initializes and wires up all dependencies. Outside "prod"
// the Redis cache is in memory and the schedule service is replaced by the
// recorded fixtures.
func NewContainer(env string) *Container {
	log.Printf("[Container] initializing container - env: %s", env)
	ctx := context.Background()

	var redisClient db.RedisClient
	var comciganApiClient comcigan.ComciganAPI

	if env != "prod" {
		redisClient = db.NewMockRedisClient()
		comciganApiClient = comcigan.NewComciganApiClientMock(config.GetResourcePath(""))
		log.Printf("[Container] Using mock redis and mock comcigan api")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.GetEnv(config.ENV_REDIS_ADDRESS, config.REDIS_DB_ADDRESS),
			Password: config.GetEnv(config.ENV_REDIS_PASSWORD, config.REDIS_DB_PASSWORD),
			DB:       config.GetEnvInt(config.ENV_REDIS_DB, config.REDIS_DB),
		})
		redisClient = db.NewGoRedisClient(ctx, redisInternalClient)

		comciganApiClient = newComciganApiClient()
		log.Printf("[Container] Using prod comcigan api")
	}
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	redisSchoolDao := redis.NewRedisSchoolDAO(redisClient, config.SCHOOL_SEARCH_CACHE_TTL_MINUTES*time.Minute)

	timetableService := services.NewTimetableService(redisSchoolDao, comciganApiClient)

	timetableHandler := handlers.NewTimetableHandler(timetableService)
	pingHandler := handlers.NewPingHandler()

	muxRouter := mux.NewRouter()
	router := server.NewRouter(timetableHandler, timetableHandler, pingHandler, muxRouter)

	comciganHttpServer := server.NewComciganHttpServer(
		router,
		muxRouter,
		config.GetEnv(config.ENV_SERVER_ADDRESS, config.SERVER_ADDRESS),
		config.SERVER_SHUTDOWN_TIMEOUT_SECONDS*time.Second,
	)

	keywords, err := util.ReadKeywords(config.GetResourcePath(config.WARM_KEYWORDS_RESOURCE))
	if err != nil {
		log.Printf("[Container] No warm keywords loaded: %v", err)
	}
	refresher := services.NewSchoolDirectoryRefresherService(redisSchoolDao, comciganApiClient, keywords)

	return &Container{
		RedisClient:                     redisClient,
		RedisSchoolDao:                  redisSchoolDao,
		ComciganAPI:                     comciganApiClient,
		TimetableService:                timetableService,
		TimetableHandler:                timetableHandler,
		PingHandler:                     pingHandler,
		MuxRouter:                       muxRouter,
		Router:                          router,
		ComciganHttpServer:              comciganHttpServer,
		SchoolDirectoryRefresherService: refresher,
	}
}

func newComciganApiClient() *comcigan.ComciganApiClient {
	client := comcigan.NewComciganApiClient(
		api.NewHTTPClient(config.GetEnv(config.ENV_COMCIGAN_BASE, config.COMCIGAN_ENDPOINT_BASE)),
		comcigan.Endpoint{
			RequestCode: config.GetEnv(config.ENV_COMCIGAN_REQUEST_CODE, config.COMCIGAN_REQUEST_CODE),
			SearchCode:  config.GetEnv(config.ENV_COMCIGAN_SEARCH_CODE, config.COMCIGAN_SEARCH_CODE),
			ScPrefix:    config.GetEnv(config.ENV_COMCIGAN_SC_PREFIX, config.COMCIGAN_SC_PREFIX),
			ScSuffix:    config.GetEnv(config.ENV_COMCIGAN_SC_SUFFIX, config.COMCIGAN_SC_SUFFIX),
		},
	)

	teacherBase := config.GetEnv(config.ENV_COMCIGAN_TEACHER_BASE, config.COMCIGAN_TEACHER_ENDPOINT_BASE)
	if teacherBase == "" {
		log.Printf("[Container] %s not set, teacher timetables disabled", config.ENV_COMCIGAN_TEACHER_BASE)
		return client
	}
	client.SetTeacherEndpoint(api.NewHTTPClient(teacherBase), comcigan.Endpoint{
		RequestCode: config.GetEnv(config.ENV_COMCIGAN_TEACHER_REQUEST_CODE, config.COMCIGAN_TEACHER_REQUEST_CODE),
		ScPrefix:    config.GetEnv(config.ENV_COMCIGAN_TEACHER_SC_PREFIX, config.COMCIGAN_TEACHER_SC_PREFIX),
		ScSuffix:    config.GetEnv(config.ENV_COMCIGAN_TEACHER_SC_SUFFIX, config.COMCIGAN_TEACHER_SC_SUFFIX),
	})
	return client
}
