package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetMyDocument(w http.ResponseWriter, r *http.Request)
	GetMyToday(w http.ResponseWriter, r *http.Request)
	GetMyCalendar(w http.ResponseWriter, r *http.Request)
	GetUserDocument(w http.ResponseWriter, r *http.Request)
	UpsertRecord(w http.ResponseWriter, r *http.Request)
	GetUserCalendar(w http.ResponseWriter, r *http.Request)
	GetUserStats(w http.ResponseWriter, r *http.Request)
	SweepLeave(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// requestUserID reads the authenticated user's id from the request token.
func requestUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", fmt.Errorf("failed to extract claims: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing")
	}
	return userID, nil
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchInRequest

	// Empty body means a plain "present" punch-in
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("PunchIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User punched in", "user_id", record.UserID, "date", record.Date)
	response.SuccessWithMessage(w, "Punched in successfully", record)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.PunchOut(r.Context())
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User punched out", "user_id", record.UserID, "date", record.Date)
	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// GetMyDocument implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	doc, err := h.attendanceService.GetDocument(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

// GetMyToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyToday(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyCalendar implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyCalendar(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	h.writeCalendar(w, r, userID)
}

// GetUserDocument implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetUserDocument(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	doc, err := h.attendanceService.GetDocument(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

// UpsertRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertRecord decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	record, err := h.attendanceService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("UpsertRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance record upserted", "user_id", record.UserID, "date", record.Date)
	response.SuccessWithMessage(w, "Attendance record saved", record)
}

// GetUserCalendar implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetUserCalendar(w http.ResponseWriter, r *http.Request) {
	h.writeCalendar(w, r, chi.URLParam(r, "id"))
}

func (h *AttendanceHandlerImpl) writeCalendar(w http.ResponseWriter, r *http.Request, userID string) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return
	}

	cells, err := h.attendanceService.GetCalendar(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cells)
}

// GetUserStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetUserStats(w http.ResponseWriter, r *http.Request) {
	req := attendance.StatsRequest{
		UserID:    chi.URLParam(r, "id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	stats, err := h.attendanceService.GetStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// SweepLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SweepLeave(w http.ResponseWriter, r *http.Request) {
	created, err := h.attendanceService.SweepDefaultLeave(r.Context())
	if err != nil {
		slog.Error("SweepLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Default leave sweep completed", "records_created", created)
	response.SuccessWithMessage(w, "Default leave records created", map[string]int64{"records_created": created})
}
