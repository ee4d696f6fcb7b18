package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"metalprices-service/internal/application"
	"metalprices-service/internal/domain"
)

type Server struct {
	svc  *application.MarketService
	ping func(ctx context.Context) error
}

// NewServer wires the market service behind the HTTP handlers. ping is
// optional and backs the readiness probe.
func NewServer(svc *application.MarketService, ping func(ctx context.Context) error) *Server {
	return &Server{svc: svc, ping: ping}
}

func (s *Server) GetLatest(w http.ResponseWriter, r *http.Request) {
	res := s.svc.Latest(r.Context())
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from != "" && !validDate(from) {
		writeError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
		return
	}
	if to != "" && !validDate(to) {
		writeError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
		return
	}
	records, err := s.svc.History(r.Context(), from, to)
	if err != nil {
		internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) Reconcile(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := s.svc.ReconcileToday(r.Context(), rec)
	if err != nil {
		internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// decodeRecord reads an optional DailyRecord body. An empty body means
// the caller wants a live collection, signalled by a nil record.
func decodeRecord(body io.Reader) (*domain.DailyRecord, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.New("failed to read body")
	}
	if len(data) == 0 {
		return nil, nil
	}
	var rec domain.DailyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.New("invalid JSON body")
	}
	if rec.Date != "" && !validDate(rec.Date) {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return &rec, nil
}

func validDate(s string) bool {
	_, err := time.Parse(application.DateLayout, s)
	return err == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
