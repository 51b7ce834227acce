package handlers

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"comcigan-server/models"
	"comcigan-server/models/timetable"
	"comcigan-server/util"
)

const (
	KEYWORD_QUERY_ARG = "keyword"
	SCHOOL_CODE_VAR   = "code"
	GRADE_VAR         = "grade"
	CLASS_VAR         = "class"
)

// TimetableProvider is what the handlers need from the service layer.
type TimetableProvider interface {
	SearchSchools(ctx context.Context, keyword string) ([]models.School, error)
	GetTimetable(ctx context.Context, schoolCode int) (*timetable.Timetable, error)
	GetClassTimetable(ctx context.Context, schoolCode, grade, class int) (*timetable.ClassTimetable, error)
	GetTeacherTimetable(ctx context.Context, schoolCode int) (*timetable.TeacherTimetable, error)
}

type schoolSearchQuery struct {
	Keyword string `validate:"required,max=64"`
}

type schoolPath struct {
	SchoolCode int `validate:"gt=0"`
}

type classPath struct {
	SchoolCode int `validate:"gt=0"`
	Grade      int `validate:"min=1,max=3"`
	Class      int `validate:"min=1"`
}

type TimetableHandler struct {
	service  TimetableProvider
	validate *validator.Validate
}

func NewTimetableHandler(service TimetableProvider) *TimetableHandler {
	return &TimetableHandler{service: service, validate: validator.New()}
}

// SearchSchools handles GET /v1/schools?keyword=
func (h *TimetableHandler) SearchSchools(w http.ResponseWriter, r *http.Request) {
	q := schoolSearchQuery{Keyword: strings.TrimSpace(r.URL.Query().Get(KEYWORD_QUERY_ARG))}
	if err := h.validate.Struct(q); err != nil {
		writeValidationError(w, r, err)
		return
	}

	schools, err := h.service.SearchSchools(r.Context(), q.Keyword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schools)
}

// GetTimetable handles GET /v1/schools/{code}/timetable
func (h *TimetableHandler) GetTimetable(w http.ResponseWriter, r *http.Request) {
	p, ok := h.parseSchoolPath(w, r)
	if !ok {
		return
	}
	t, err := h.service.GetTimetable(r.Context(), p.SchoolCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// GetClassTimetable handles GET /v1/schools/{code}/timetable/{grade}/{class}
func (h *TimetableHandler) GetClassTimetable(w http.ResponseWriter, r *http.Request) {
	ct, ok := h.loadClass(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ct)
}

// GetClassTimetableChart renders the week of one class as an HTML heatmap.
func (h *TimetableHandler) GetClassTimetableChart(w http.ResponseWriter, r *http.Request) {
	ct, ok := h.loadClass(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := util.RenderClassTimetableHeatMap(&buf, ct); err != nil {
		log.Printf("[TimetableHandler] Render chart failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "could not render chart")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetTeacherTimetable handles GET /v1/schools/{code}/teachers/timetable
func (h *TimetableHandler) GetTeacherTimetable(w http.ResponseWriter, r *http.Request) {
	p, ok := h.parseSchoolPath(w, r)
	if !ok {
		return
	}
	tt, err := h.service.GetTeacherTimetable(r.Context(), p.SchoolCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tt)
}

func (h *TimetableHandler) loadClass(w http.ResponseWriter, r *http.Request) (*timetable.ClassTimetable, bool) {
	vars := mux.Vars(r)
	var p classPath
	var err error
	if p.SchoolCode, err = strconv.Atoi(vars[SCHOOL_CODE_VAR]); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid argument "+SCHOOL_CODE_VAR)
		return nil, false
	}
	if p.Grade, err = strconv.Atoi(vars[GRADE_VAR]); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid argument "+GRADE_VAR)
		return nil, false
	}
	if p.Class, err = strconv.Atoi(vars[CLASS_VAR]); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid argument "+CLASS_VAR)
		return nil, false
	}
	if err := h.validate.Struct(p); err != nil {
		writeValidationError(w, r, err)
		return nil, false
	}

	ct, err := h.service.GetClassTimetable(r.Context(), p.SchoolCode, p.Grade, p.Class)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}
	return ct, true
}

func (h *TimetableHandler) parseSchoolPath(w http.ResponseWriter, r *http.Request) (schoolPath, bool) {
	var p schoolPath
	code, err := strconv.Atoi(mux.Vars(r)[SCHOOL_CODE_VAR])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid argument "+SCHOOL_CODE_VAR)
		return p, false
	}
	p.SchoolCode = code
	if err := h.validate.Struct(p); err != nil {
		writeValidationError(w, r, err)
		return p, false
	}
	return p, true
}
