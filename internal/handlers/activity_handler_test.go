// internal/handlers/activity_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
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
	"go_4_streak_keep/internal/middleware"
	"go_4_streak_keep/internal/model"
	"go_4_streak_keep/internal/service/mocks"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// createRequest はテナントヘッダー付きのリクエストを組み立てます。
// body が string ならそのまま、それ以外は JSON にエンコードして送ります。
func createRequest(t *testing.T, method, path string, body interface{}, tenantID *uuid.UUID) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != nil {
		req.Header.Set("X-Tenant-ID", tenantID.String())
	}
	return req
}

func newTestRouter(register func(r chi.Router)) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.DevTenantContextMiddleware)
	register(router)
	return router
}

func assertErrorResponse(t *testing.T, body []byte) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.NotEmpty(t, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}

func TestActivityHandler_RecordLessons(t *testing.T) {
	tenantID := uuid.New()

	expectedRecord := &model.DailyActivityRecord{
		RecordID:         uuid.New(),
		TenantID:         tenantID,
		Date:             "2025-03-10",
		LessonsCompleted: 1,
		StreakLevel:      model.LevelFlame,
	}

	tests := []struct {
		name           string
		tenantID       *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.ActivityService)
		expectedStatus int
		expectError    bool
	}{
		{
			name:     "正常系 - count省略時は1で記録する",
			tenantID: &tenantID,
			body:     nil, // ボディなし
			setupMock: func(m *mocks.ActivityService) {
				m.On("RecordLessonCompleted", mock.Anything, tenantID, 1).
					Return(expectedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "正常系 - count指定",
			tenantID: &tenantID,
			body:     map[string]int{"count": 3},
			setupMock: func(m *mocks.ActivityService) {
				m.On("RecordLessonCompleted", mock.Anything, tenantID, 3).
					Return(expectedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系 - テナントヘッダーなし",
			tenantID:       nil,
			body:           nil,
			setupMock:      func(m *mocks.ActivityService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusForbidden,
			expectError:    true,
		},
		{
			name:     "正常系 - count=0は省略と同じく1で記録する",
			tenantID: &tenantID,
			body:     map[string]int{"count": 0},
			setupMock: func(m *mocks.ActivityService) {
				m.On("RecordLessonCompleted", mock.Anything, tenantID, 1).
					Return(expectedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系 - 負数はバリデーションで弾く",
			tenantID:       &tenantID,
			body:           map[string]int{"count": -1},
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "異常系 - 不正なJSON",
			tenantID:       &tenantID,
			body:           `{"count": `,
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:     "異常系 - Serviceが入力エラーを返す",
			tenantID: &tenantID,
			body:     map[string]int{"count": 5},
			setupMock: func(m *mocks.ActivityService) {
				m.On("RecordLessonCompleted", mock.Anything, tenantID, 5).
					Return(nil, model.NewAppError("INVALID_ARGUMENT", "回数は1以上で指定してください。", "count", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewActivityService(t)
			tc.setupMock(mockService)

			handler := handlers.NewActivityHandler(mockService, testLogger)
			router := newTestRouter(func(r chi.Router) {
				r.Post("/api/v1/activity/lessons", handler.RecordLessons)
			})

			req := createRequest(t, "POST", "/api/v1/activity/lessons", tc.body, tc.tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectError {
				assertErrorResponse(t, rr.Body.Bytes())
			} else {
				var resp model.DailyActivityRecord
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, expectedRecord.Date, resp.Date)
				assert.Equal(t, expectedRecord.StreakLevel, resp.StreakLevel)
			}
		})
	}
}

func TestActivityHandler_RecordCards(t *testing.T) {
	tenantID := uuid.New()

	expectedRecord := &model.DailyActivityRecord{
		RecordID:          uuid.New(),
		TenantID:          tenantID,
		Date:              "2025-03-10",
		FeedCardsReviewed: 10,
		StreakLevel:       model.LevelSpark,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.ActivityService)
		expectedStatus int
		expectError    bool
	}{
		{
			name: "正常系 - カードレビューを記録",
			body: map[string]int{"count": 10},
			setupMock: func(m *mocks.ActivityService) {
				m.On("RecordCardsReviewed", mock.Anything, tenantID, 10).
					Return(expectedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系 - countは必須",
			body:           map[string]int{},
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "異常系 - 負数は弾く",
			body:           map[string]int{"count": -2},
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewActivityService(t)
			tc.setupMock(mockService)

			handler := handlers.NewActivityHandler(mockService, testLogger)
			router := newTestRouter(func(r chi.Router) {
				r.Post("/api/v1/activity/cards", handler.RecordCards)
			})

			req := createRequest(t, "POST", "/api/v1/activity/cards", tc.body, &tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectError {
				assertErrorResponse(t, rr.Body.Bytes())
			}
		})
	}
}

func TestActivityHandler_RecordTime(t *testing.T) {
	tenantID := uuid.New()

	expectedRecord := &model.DailyActivityRecord{
		RecordID:         uuid.New(),
		TenantID:         tenantID,
		Date:             "2025-03-10",
		TimeSpentSeconds: 300,
		StreakLevel:      model.LevelSpark,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.ActivityService)
		expectedStatus int
		expectError    bool
	}{
		{
			name: "正常系 - 学習時間を記録",
			body: map[string]int64{"seconds": 300},
			setupMock: func(m *mocks.ActivityService) {
				m.On("RecordTimeSpent", mock.Anything, tenantID, int64(300)).
					Return(expectedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系 - secondsは必須",
			body:           map[string]int64{},
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "異常系 - 未知のフィールドは弾く",
			body:           map[string]int64{"seconds": 60, "minutes": 1},
			setupMock:      func(m *mocks.ActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewActivityService(t)
			tc.setupMock(mockService)

			handler := handlers.NewActivityHandler(mockService, testLogger)
			router := newTestRouter(func(r chi.Router) {
				r.Post("/api/v1/activity/time", handler.RecordTime)
			})

			req := createRequest(t, "POST", "/api/v1/activity/time", tc.body, &tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectError {
				assertErrorResponse(t, rr.Body.Bytes())
			} else {
				var resp model.DailyActivityRecord
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.EqualValues(t, 300, resp.TimeSpentSeconds)
			}
		})
	}
}

func TestActivityHandler_GetToday(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系 - 当日レコードあり", func(t *testing.T) {
		mockService := mocks.NewActivityService(t)
		mockService.On("GetTodayActivity", mock.Anything, tenantID).
			Return(&model.DailyActivityRecord{
				RecordID:         uuid.New(),
				TenantID:         tenantID,
				Date:             "2025-03-10",
				LessonsCompleted: 2,
				StreakLevel:      model.LevelFlame,
			}, nil).Once()

		handler := handlers.NewActivityHandler(mockService, testLogger)
		router := newTestRouter(func(r chi.Router) {
			r.Get("/api/v1/activity/today", handler.GetToday)
		})

		req := createRequest(t, "GET", "/api/v1/activity/today", nil, &tenantID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.DailyActivityRecord
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "2025-03-10", resp.Date)
		assert.Equal(t, 2, resp.LessonsCompleted)
	})

	t.Run("正常系 - 未活動日はnullを返す", func(t *testing.T) {
		mockService := mocks.NewActivityService(t)
		mockService.On("GetTodayActivity", mock.Anything, tenantID).
			Return(nil, nil).Once()

		handler := handlers.NewActivityHandler(mockService, testLogger)
		router := newTestRouter(func(r chi.Router) {
			r.Get("/api/v1/activity/today", handler.GetToday)
		})

		req := createRequest(t, "GET", "/api/v1/activity/today", nil, &tenantID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "null", strings.TrimSpace(rr.Body.String()))
	})
}

func TestActivityHandler_GetTotals(t *testing.T) {
	tenantID := uuid.New()

	mockService := mocks.NewActivityService(t)
	mockService.On("GetLifetimeTotals", mock.Anything, tenantID).
		Return(&model.LifetimeTotals{
			LessonsCompleted: 42,
			TimeSpentSeconds: 3600,
		}, nil).Once()

	handler := handlers.NewActivityHandler(mockService, testLogger)
	router := newTestRouter(func(r chi.Router) {
		r.Get("/api/v1/activity/totals", handler.GetTotals)
	})

	req := createRequest(t, "GET", "/api/v1/activity/totals", nil, &tenantID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.LifetimeTotals
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.EqualValues(t, 42, resp.LessonsCompleted)
	assert.EqualValues(t, 3600, resp.TimeSpentSeconds)
}

func TestActivityHandler_ClearActivity(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系 - 204で返す", func(t *testing.T) {
		mockService := mocks.NewActivityService(t)
		mockService.On("ClearActivity", mock.Anything, tenantID).
			Return(nil).Once()

		handler := handlers.NewActivityHandler(mockService, testLogger)
		router := newTestRouter(func(r chi.Router) {
			r.Delete("/api/v1/activity", handler.ClearActivity)
		})

		req := createRequest(t, "DELETE", "/api/v1/activity", nil, &tenantID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("異常系 - Service内部エラーは500", func(t *testing.T) {
		mockService := mocks.NewActivityService(t)
		mockService.On("ClearActivity", mock.Anything, tenantID).
			Return(model.NewAppError("INTERNAL_SERVER_ERROR", "活動レコードの削除に失敗しました。", "", model.ErrInternalServer)).Once()

		handler := handlers.NewActivityHandler(mockService, testLogger)
		router := newTestRouter(func(r chi.Router) {
			r.Delete("/api/v1/activity", handler.ClearActivity)
		})

		req := createRequest(t, "DELETE", "/api/v1/activity", nil, &tenantID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
	})
}
