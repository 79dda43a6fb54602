// internal/handlers/activity_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_4_streak_keep/internal/middleware"
	"go_4_streak_keep/internal/model"
	"go_4_streak_keep/internal/service"
	"go_4_streak_keep/internal/webutil"

	"github.com/google/uuid"
)

type ActivityHandler struct {
	service service.ActivityService
	logger  *slog.Logger
}

func NewActivityHandler(s service.ActivityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{service: s, logger: logger}
}

// RecordLessons はレッスン完了を記録します。count 省略時は1。
func (h *ActivityHandler) RecordLessons(w http.ResponseWriter, r *http.Request) {
	h.recordEvent(w, r, h.service.RecordLessonCompleted)
}

// RecordExams は試験完了を記録します。count 省略時は1。
func (h *ActivityHandler) RecordExams(w http.ResponseWriter, r *http.Request) {
	h.recordEvent(w, r, h.service.RecordExamCompleted)
}

// RecordCards はフィードカードのレビューを記録します。
func (h *ActivityHandler) RecordCards(w http.ResponseWriter, r *http.Request) {
	h.recordCount(w, r, h.service.RecordCardsReviewed)
}

// RecordQuestions はクイズ設問の回答を記録します。
func (h *ActivityHandler) RecordQuestions(w http.ResponseWriter, r *http.Request) {
	h.recordCount(w, r, h.service.RecordQuestionsAnswered)
}

// RecordTime は学習時間 (秒) を記録します。
func (h *ActivityHandler) RecordTime(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RecordTimeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	record, err := h.service.RecordTimeSpent(r.Context(), tenantID, req.Seconds)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, record)
}

// GetToday は当日の活動レコードを返します。未作成なら null。
func (h *ActivityHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	record, err := h.service.GetTodayActivity(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, record)
}

// GetTotals は全履歴の累計カウンタを返します。
func (h *ActivityHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	totals, err := h.service.GetLifetimeTotals(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, totals)
}

// ClearActivity はテナントの全活動レコードを削除します (アカウントリセット用)。
func (h *ActivityHandler) ClearActivity(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.ClearActivity(r.Context(), tenantID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recordEvent は count 省略可 (デフォルト1) の記録操作の共通処理です。
func (h *ActivityHandler) recordEvent(w http.ResponseWriter, r *http.Request, record func(context.Context, uuid.UUID, int) (*model.DailyActivityRecord, error)) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RecordEventRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	rec, err := record(r.Context(), tenantID, req.Count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, rec)
}

// recordCount は count 必須の記録操作の共通処理です。
func (h *ActivityHandler) recordCount(w http.ResponseWriter, r *http.Request, record func(context.Context, uuid.UUID, int) (*model.DailyActivityRecord, error)) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RecordCountRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	rec, err := record(r.Context(), tenantID, req.Count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, rec)
}
