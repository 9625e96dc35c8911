package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

func TestAnalyzeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validBody := `{"plot_size":"30x40 ft","room_type":"apartment","orientation":"east","floor_number":2,"rooms":[{"name":"Living Room","zone":"north"}]}`

	genuine := &models.AnalysisOutcome{
		Source: models.SourceService,
		Report: models.AnalysisReport{
			VastuScore:         84,
			EnergyFlowScore:    80,
			RoomPlacementScore: 88,
			DirectionalScore:   85,
			Recommendations: []models.Recommendation{
				{Element: "Water", Score: 80, Message: "Place water storage in the northeast"},
			},
		},
	}

	tests := []struct {
		name          string
		body          string
		authenticated bool
		mockSetup     func(m *MockSpaceAnalyzer)
		expectedCode  int
		checkResp     func(t *testing.T, resp map[string]interface{})
	}{
		{
			name:          "genuine analysis",
			body:          validBody,
			authenticated: true,
			mockSetup: func(m *MockSpaceAnalyzer) {
				m.EXPECT().
					AnalyzeSpace(gomock.Any(), int64(7), nil, models.SpaceDescription{
						PlotSize:    "30x40 ft",
						RoomType:    "apartment",
						Orientation: "east",
						FloorNumber: 2,
						Rooms:       []models.RoomInput{{Name: "Living Room", Zone: "north"}},
					}, gomock.Any()).
					Return(genuine, nil)
			},
			expectedCode: http.StatusOK,
			checkResp: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "service", resp["source"])
				assert.Equal(t, false, resp["degraded"])
				assert.Equal(t, float64(84), resp["vastu_score"])
			},
		},
		{
			name:          "degraded fallback is still a well formed report",
			body:          validBody,
			authenticated: true,
			mockSetup: func(m *MockSpaceAnalyzer) {
				m.EXPECT().
					AnalyzeSpace(gomock.Any(), int64(7), nil, gomock.Any(), gomock.Any()).
					Return(&models.AnalysisOutcome{Source: models.SourceFallback, Report: models.FallbackReport()}, nil)
			},
			expectedCode: http.StatusOK,
			checkResp: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "fallback", resp["source"])
				assert.Equal(t, true, resp["degraded"])
				assert.Equal(t, float64(78), resp["vastu_score"])
				recs := resp["recommendations"].([]interface{})
				assert.Len(t, recs, 1)
			},
		},
		{
			name:          "cached report",
			body:          `{"space_id":11,"plot_size":"30x40 ft","room_type":"apartment","orientation":"east","floor_number":2,"rooms":[{"name":"Living Room","zone":"north"}]}`,
			authenticated: true,
			mockSetup: func(m *MockSpaceAnalyzer) {
				spaceID := int64(11)
				m.EXPECT().
					AnalyzeSpace(gomock.Any(), int64(7), &spaceID, gomock.Any(), gomock.Any()).
					Return(&models.AnalysisOutcome{Source: models.SourceCache, Report: genuine.Report}, nil)
			},
			expectedCode: http.StatusOK,
			checkResp: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "cache", resp["source"])
				assert.Equal(t, false, resp["degraded"])
			},
		},
		{
			name:          "validation failure",
			body:          `{"plot_size":"","room_type":"","orientation":"","floor_number":0,"rooms":[]}`,
			authenticated: true,
			mockSetup: func(m *MockSpaceAnalyzer) {
				m.EXPECT().
					AnalyzeSpace(gomock.Any(), int64(7), nil, gomock.Any(), gomock.Any()).
					Return(nil, &validation.Error{Message: "All space details are required"})
			},
			expectedCode: http.StatusBadRequest,
			checkResp: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "All space details are required", resp["message"])
			},
		},
		{
			name:          "unauthenticated",
			body:          validBody,
			authenticated: false,
			mockSetup:     func(m *MockSpaceAnalyzer) {},
			expectedCode:  http.StatusUnauthorized,
			checkResp: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "Please login first", resp["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSpaceAnalyzer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(tt.body))
			if tt.authenticated {
				ctx := middlewares.SetPrincipalToContext(req.Context(), models.Principal{UserID: 7})
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			NewAnalyzeHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.checkResp(t, resp)
		})
	}
}

func TestAnalyzeImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	content := []byte("\x89PNG\r\n\x1a\npixels")

	t.Run("genuine analysis", func(t *testing.T) {
		mockSvc := NewMockImageAnalyzer(ctrl)
		mockSvc.EXPECT().
			AnalyzeImage(gomock.Any(), int64(7), "plan.png", content, gomock.Any()).
			Return(&models.AnalysisOutcome{
				Source: models.SourceService,
				Report: models.AnalysisReport{VastuScore: 72},
			}, nil)

		body, contentType := multipartBody(t, "file", map[string][]byte{"plan.png": content})
		req := httptest.NewRequest(http.MethodPost, "/analyze/image", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middlewares.SetPrincipalToContext(req.Context(), models.Principal{UserID: 7}))
		rec := httptest.NewRecorder()

		NewAnalyzeImageHandler(mockSvc, testMaxUpload)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "service", resp["source"])
		assert.Equal(t, float64(72), resp["vastu_score"])
	})

	t.Run("missing file part", func(t *testing.T) {
		mockSvc := NewMockImageAnalyzer(ctrl)

		body, contentType := multipartBody(t, "other_field", map[string][]byte{"plan.png": content})
		req := httptest.NewRequest(http.MethodPost, "/analyze/image", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middlewares.SetPrincipalToContext(req.Context(), models.Principal{UserID: 7}))
		rec := httptest.NewRecorder()

		NewAnalyzeImageHandler(mockSvc, testMaxUpload)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No image uploaded", resp["message"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockImageAnalyzer(ctrl)

		body, contentType := multipartBody(t, "file", map[string][]byte{"plan.png": content})
		req := httptest.NewRequest(http.MethodPost, "/analyze/image", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		NewAnalyzeImageHandler(mockSvc, testMaxUpload)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
