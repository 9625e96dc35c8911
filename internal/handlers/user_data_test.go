package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/services"
)

func TestUserDataHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := &services.UserData{
		User: &models.UserDB{ID: 7, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
		Spaces: []models.SpaceWithRooms{
			{
				SpaceDB:   models.SpaceDB{ID: 11, UserID: 7, PlotSize: "30x40 ft", RoomType: "apartment", Orientation: "east"},
				RoomCount: 2,
				Rooms: []models.RoomDB{
					{ID: 21, SpaceID: 11, RoomName: "Living Room", RoomZone: "north"},
					{ID: 22, SpaceID: 11, RoomName: "Kitchen", RoomZone: "southeast"},
				},
			},
		},
		FloorPlans: []models.FloorPlanDB{{ID: 3, UserID: 7, FileName: "plan.png"}},
		Analyses:   []models.AnalysisResultDB{{ID: 5, UserID: 7, OverallScore: 82}},
	}

	tests := []struct {
		name          string
		authenticated bool
		mockSetup     func(m *MockUserDataProvider)
		expectedCode  int
	}{
		{
			name:          "success",
			authenticated: true,
			mockSetup: func(m *MockUserDataProvider) {
				m.EXPECT().GetUserData(gomock.Any(), int64(7)).Return(data, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "unauthenticated",
			authenticated: false,
			mockSetup:     func(m *MockUserDataProvider) {},
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "internal server error",
			authenticated: true,
			mockSetup: func(m *MockUserDataProvider) {
				m.EXPECT().GetUserData(gomock.Any(), int64(7)).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDataProvider(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/user-data", nil)
			if tt.authenticated {
				ctx := middlewares.SetPrincipalToContext(req.Context(), models.Principal{UserID: 7})
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			NewUserDataHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, true, resp["success"])

				user := resp["user"].(map[string]interface{})
				assert.Equal(t, "asha@example.com", user["email"])
				// Password hash must never leak through the aggregation.
				_, leaked := user["password_hash"]
				assert.False(t, leaked)

				spaces := resp["spaces"].([]interface{})
				assert.Len(t, spaces, 1)
				first := spaces[0].(map[string]interface{})
				assert.Equal(t, float64(2), first["room_count"])
				assert.Len(t, first["rooms"], 2)

				assert.Len(t, resp["floor_plans"], 1)
				assert.Len(t, resp["analyses"], 1)
			}
		})
	}
}
