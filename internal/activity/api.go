package activity

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBytes = 64 << 10

type summarizeRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewAPI(logger *slog.Logger, activityService *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/trainings", handleSummarize(logger, activityService))
	mux.Handle("GET /healthz", handleHealthz())
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func handleHealthz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func handleSummarize(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			logger.Error("Error decoding request", slog.Any("error", err))
			writeError(logger, w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}

		summary, err := activityService.Summarize(r.Context(), req.WorkoutType, req.Data)
		if err != nil {
			code := errorCode(err)
			status := http.StatusBadRequest
			if code == "server_error" {
				status = http.StatusInternalServerError
			}
			writeError(logger, w, status, code, err.Error())
			return
		}

		writeJSON(logger, w, http.StatusOK, summary)
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func writeError(logger *slog.Logger, w http.ResponseWriter, status int, code, message string) {
	writeJSON(logger, w, status, errorResponse{Error: code, Message: message})
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "server_error", Message: "unable to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error("Error writing response", slog.Any("error", err))
	}
}
