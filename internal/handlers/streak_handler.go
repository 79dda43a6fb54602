// internal/handlers/streak_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go_4_streak_keep/internal/middleware"
	"go_4_streak_keep/internal/service"
	"go_4_streak_keep/internal/webutil"
)

type StreakHandler struct {
	service service.ActivityService
	logger  *slog.Logger
}

func NewStreakHandler(s service.ActivityService, logger *slog.Logger) *StreakHandler {
	return &StreakHandler{service: s, logger: logger}
}

// GetStatus は現在のストリークステータスを一回限りで返します。
func (h *StreakHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	status, err := h.service.GetStatus(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, status)
}

// StreamStatus は StreakStatus をSSEで配信します。
// 接続直後に現在値を1件、以後はレコード変更と日付切り替わりのたびに再導出した値を流します。
func (h *StreakHandler) StreamStatus(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	statuses, cancel, err := h.service.ObserveStatus(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case status, ok := <-statuses:
			if !ok {
				return
			}

			data, err := json.Marshal(status)
			if err != nil {
				logger.Error("Failed to marshal streak status event", "error", err)
				continue
			}
			w.Write([]byte("data: "))
			w.Write(data)
			w.Write([]byte("\n\n"))
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
