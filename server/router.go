package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SchoolHandler serves the school directory routes.
type SchoolHandler interface {
	SearchSchools(w http.ResponseWriter, r *http.Request)
}

// TimetableHandler serves the timetable routes.
type TimetableHandler interface {
	GetTimetable(w http.ResponseWriter, r *http.Request)
	GetClassTimetable(w http.ResponseWriter, r *http.Request)
	GetClassTimetableChart(w http.ResponseWriter, r *http.Request)
	GetTeacherTimetable(w http.ResponseWriter, r *http.Request)
}

type PingHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	schoolHandler    SchoolHandler
	timetableHandler TimetableHandler
	pingHandler      PingHandler
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	schoolHandler SchoolHandler,
	timetableHandler TimetableHandler,
	pingHandler PingHandler,
	router *mux.Router) *Router {
	return &Router{
		schoolHandler:    schoolHandler,
		timetableHandler: timetableHandler,
		pingHandler:      pingHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware)

	// expects ?keyword={school name fragment}
	r.router.HandleFunc("/v1/schools", r.schoolHandler.SearchSchools).Methods("GET")

	r.router.HandleFunc("/v1/schools/{code}/timetable", r.timetableHandler.GetTimetable).Methods("GET")
	r.router.HandleFunc("/v1/schools/{code}/timetable/{grade}/{class}", r.timetableHandler.GetClassTimetable).Methods("GET")
	r.router.HandleFunc("/v1/schools/{code}/timetable/{grade}/{class}/chart", r.timetableHandler.GetClassTimetableChart).Methods("GET")
	r.router.HandleFunc("/v1/schools/{code}/teachers/timetable", r.timetableHandler.GetTeacherTimetable).Methods("GET")

	r.router.HandleFunc("/ping", r.pingHandler.Ping).Methods("GET")
}
