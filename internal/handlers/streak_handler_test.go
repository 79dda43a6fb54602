// internal/handlers/streak_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_4_streak_keep/internal/handlers"
	"go_4_streak_keep/internal/model"
	"go_4_streak_keep/internal/service/mocks"
)

func TestStreakHandler_GetStatus(t *testing.T) {
	tenantID := uuid.New()
	lastActive := "2025-03-09"

	tests := []struct {
		name           string
		tenantID       *uuid.UUID
		setupMock      func(m *mocks.ActivityService)
		expectedStatus int
		expectError    bool
		verify         func(t *testing.T, status *model.StreakStatus)
	}{
		{
			name:     "正常系 - at-risk状態のステータスを返す",
			tenantID: &tenantID,
			setupMock: func(m *mocks.ActivityService) {
				m.On("GetStatus", mock.Anything, tenantID).
					Return(&model.StreakStatus{
						CurrentStreak:  7,
						LongestStreak:  12,
						TodayLevel:     model.LevelCold,
						LastActiveDate: &lastActive,
						IsAtRisk:       true,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, status *model.StreakStatus) {
				assert.Equal(t, 7, status.CurrentStreak)
				assert.Equal(t, 12, status.LongestStreak)
				assert.Equal(t, model.LevelCold, status.TodayLevel)
				require.NotNil(t, status.LastActiveDate)
				assert.Equal(t, lastActive, *status.LastActiveDate)
				assert.True(t, status.IsAtRisk)
			},
		},
		{
			name:     "正常系 - 履歴なしは空ステータス",
			tenantID: &tenantID,
			setupMock: func(m *mocks.ActivityService) {
				m.On("GetStatus", mock.Anything, tenantID).
					Return(model.EmptyStreakStatus(), nil).Once()
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, status *model.StreakStatus) {
				assert.Equal(t, 0, status.CurrentStreak)
				assert.Nil(t, status.LastActiveDate)
				assert.False(t, status.IsAtRisk)
			},
		},
		{
			name:           "異常系 - テナントヘッダーなし",
			tenantID:       nil,
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusForbidden,
			expectError:    true,
		},
		{
			name:     "異常系 - 保存データ不正は500",
			tenantID: &tenantID,
			setupMock: func(m *mocks.ActivityService) {
				m.On("GetStatus", mock.Anything, tenantID).
					Return(nil, model.NewAppError("DATA_CORRUPTED", "保存されている活動データが不正です。", "", model.ErrDataCorrupted)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewActivityService(t)
			tc.setupMock(mockService)

			handler := handlers.NewStreakHandler(mockService, testLogger)
			router := newTestRouter(func(r chi.Router) {
				r.Get("/api/v1/streak/status", handler.GetStatus)
			})

			req := createRequest(t, "GET", "/api/v1/streak/status", nil, tc.tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectError {
				assertErrorResponse(t, rr.Body.Bytes())
				return
			}

			var status model.StreakStatus
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
			if tc.verify != nil {
				tc.verify(t, &status)
			}
		})
	}
}

func TestStreakHandler_StreamStatus(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系 - 購読中のステータスをSSEで流す", func(t *testing.T) {
		first := &model.StreakStatus{CurrentStreak: 1, LongestStreak: 3, TodayLevel: model.LevelSpark}
		second := &model.StreakStatus{CurrentStreak: 2, LongestStreak: 3, TodayLevel: model.LevelFlame}

		// チャネルを事前に満たして閉じておけば、ハンドラは2件流して終了する
		statuses := make(chan *model.StreakStatus, 2)
		statuses <- first
		statuses <- second
		close(statuses)

		cancelled := false
		mockService := mocks.NewActivityService(t)
		mockService.On("ObserveStatus", mock.Anything, tenantID).
			Return((<-chan *model.StreakStatus)(statuses), func() { cancelled = true }, nil).Once()

		handler := handlers.NewStreakHandler(mockService, testLogger)
		router := newTestRouter(func(r chi.Router) {
			r.Get("/api/v1/streak/status/stream", handler.StreamStatus)
		})

		req := createRequest(t, "GET", "/api/v1/streak/status/stream", nil, &tenantID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		assert.True(t, cancelled, "cancel should run when the stream ends")

		// data: 行が2件、送信順で並ぶ
		body := rr.Body.String()
		var events []model.StreakStatus
		for _, line := range strings.Split(body, "\n") {
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var status model.StreakStatus
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &status))
			events = append(events, status)
		}
		require.Len(t, events, 2)
		assert.Equal(t, 1, events[0].CurrentStreak)
		assert.Equal(t, 2, events[1].CurrentStreak)
		assert.Equal(t, model.LevelFlame, events[1].TodayLevel)
	})

	t.Run("異常系 - 購読開始に失敗したらエラーレスポンス", func(t *testing.T) {
		mockService := mocks.NewActivityService(t)
		mockService.On("ObserveStatus", mock.Anything, tenantID).
			Return(nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "活動履歴の取得に失敗しました。", "", model.ErrInternalServer)).Once()

		handler := handlers.NewStreakHandler(mockService, testLogger)
		router := newTestRouter(func(r chi.Router) {
			r.Get("/api/v1/streak/status/stream", handler.StreamStatus)
		})

		req := createRequest(t, "GET", "/api/v1/streak/status/stream", nil, &tenantID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
	})
}
