package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

func newSpaceServiceForTest(ctrl *gomock.Controller) (*SpaceService, *MockSpaceWriter, *MockSpaceReader, *MockUserReader, *MockFloorPlanReader, *MockAnalysisReader) {
	writer := NewMockSpaceWriter(ctrl)
	reader := NewMockSpaceReader(ctrl)
	users := NewMockUserReader(ctrl)
	floorPlans := NewMockFloorPlanReader(ctrl)
	analyses := NewMockAnalysisReader(ctrl)
	svc := NewSpaceService(writer, reader, users, floorPlans, analyses, nil)
	return svc, writer, reader, users, floorPlans, analyses
}

func TestSpaceServiceSaveSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := []models.RoomInput{
		{Name: "Living Room", Zone: "north"},
		{Name: "Kitchen", Zone: "southeast"},
	}

	tests := []struct {
		name        string
		plotSize    string
		roomType    string
		orientation string
		floorNumber int
		rooms       []models.RoomInput
		mockSetup   func(writer *MockSpaceWriter)
		wantSpaceID int64
		wantValMsg  string
	}{
		{
			name:        "success",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 2,
			rooms:       rooms,
			mockSetup: func(writer *MockSpaceWriter) {
				writer.EXPECT().
					Save(gomock.Any(), int64(7), "30x40 ft", "apartment", "east", 2, rooms, "10.0.0.1").
					Return(int64(11), nil)
			},
			wantSpaceID: 11,
		},
		{
			name:        "ground floor is valid",
			plotSize:    "30x40 ft",
			roomType:    "house",
			orientation: "north",
			floorNumber: 0,
			rooms:       rooms,
			mockSetup: func(writer *MockSpaceWriter) {
				writer.EXPECT().
					Save(gomock.Any(), int64(7), "30x40 ft", "house", "north", 0, rooms, "10.0.0.1").
					Return(int64(12), nil)
			},
			wantSpaceID: 12,
		},
		{
			name:        "floor 100 is valid",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 100,
			rooms:       rooms,
			mockSetup: func(writer *MockSpaceWriter) {
				writer.EXPECT().
					Save(gomock.Any(), int64(7), "30x40 ft", "apartment", "east", 100, rooms, "10.0.0.1").
					Return(int64(13), nil)
			},
			wantSpaceID: 13,
		},
		{
			name:        "negative floor writes nothing",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: -1,
			rooms:       rooms,
			mockSetup:   func(writer *MockSpaceWriter) {},
			wantValMsg:  "Floor number must be between 0 and 100",
		},
		{
			name:        "floor above 100 writes nothing",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 101,
			rooms:       rooms,
			mockSetup:   func(writer *MockSpaceWriter) {},
			wantValMsg:  "Floor number must be between 0 and 100",
		},
		{
			name:        "empty room set writes nothing",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 2,
			rooms:       nil,
			mockSetup:   func(writer *MockSpaceWriter) {},
			wantValMsg:  "At least one room is required",
		},
		{
			name:        "malformed room writes nothing",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 2,
			rooms: []models.RoomInput{
				{Name: "Living Room", Zone: "north"},
				{Name: "", Zone: "east"},
			},
			mockSetup:  func(writer *MockSpaceWriter) {},
			wantValMsg: "Room name and zone required",
		},
		{
			name:        "invalid zone writes nothing",
			plotSize:    "30x40 ft",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 2,
			rooms: []models.RoomInput{
				{Name: "Living Room", Zone: "up"},
			},
			mockSetup:  func(writer *MockSpaceWriter) {},
			wantValMsg: "Invalid room zone: up",
		},
		{
			name:        "missing details writes nothing",
			plotSize:    "",
			roomType:    "apartment",
			orientation: "east",
			floorNumber: 2,
			rooms:       rooms,
			mockSetup:   func(writer *MockSpaceWriter) {},
			wantValMsg:  "All space details are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, writer, _, _, _, _ := newSpaceServiceForTest(ctrl)
			tt.mockSetup(writer)

			spaceID, err := svc.SaveSpace(context.Background(), 7, tt.plotSize, tt.roomType, tt.orientation, tt.floorNumber, tt.rooms, "10.0.0.1")

			if tt.wantValMsg != "" {
				assert.True(t, validation.IsValidation(err))
				assert.EqualError(t, err, tt.wantValMsg)
				assert.Zero(t, spaceID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSpaceID, spaceID)
		})
	}
}

func TestSpaceServiceSaveSpacePropagatesWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, writer, _, _, _, _ := newSpaceServiceForTest(ctrl)

	writer.EXPECT().
		Save(gomock.Any(), int64(7), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("insert failed"))

	_, err := svc.SaveSpace(context.Background(), 7, "30x40 ft", "apartment", "east", 2,
		[]models.RoomInput{{Name: "Living Room", Zone: "north"}}, "10.0.0.1")
	assert.Error(t, err)
}

func TestSpaceServiceGetUserData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"}
	spaces := []models.SpaceWithRooms{
		{
			SpaceDB:   models.SpaceDB{ID: 11, UserID: 7},
			RoomCount: 1,
			Rooms:     []models.RoomDB{{ID: 21, SpaceID: 11, RoomName: "Living Room", RoomZone: "north"}},
		},
	}
	floorPlans := []models.FloorPlanDB{{ID: 3, UserID: 7}}
	analyses := []models.AnalysisResultDB{{ID: 5, UserID: 7}}

	t.Run("success", func(t *testing.T) {
		svc, _, reader, users, fpReader, aReader := newSpaceServiceForTest(ctrl)

		users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(user, nil)
		reader.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(spaces, nil)
		fpReader.EXPECT().ListRecentByUserID(gomock.Any(), int64(7), RecentFloorPlanLimit).Return(floorPlans, nil)
		aReader.EXPECT().ListRecentByUserID(gomock.Any(), int64(7), RecentAnalysisLimit).Return(analyses, nil)

		data, err := svc.GetUserData(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, user, data.User)
		assert.Equal(t, spaces, data.Spaces)
		assert.Equal(t, floorPlans, data.FloorPlans)
		assert.Equal(t, analyses, data.Analyses)
	})

	t.Run("read only: repeated reads return identical results", func(t *testing.T) {
		svc, _, reader, users, fpReader, aReader := newSpaceServiceForTest(ctrl)

		users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(user, nil).Times(2)
		reader.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(spaces, nil).Times(2)
		fpReader.EXPECT().ListRecentByUserID(gomock.Any(), int64(7), RecentFloorPlanLimit).Return(floorPlans, nil).Times(2)
		aReader.EXPECT().ListRecentByUserID(gomock.Any(), int64(7), RecentAnalysisLimit).Return(analyses, nil).Times(2)

		first, err := svc.GetUserData(context.Background(), 7)
		assert.NoError(t, err)
		second, err := svc.GetUserData(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _, users, _, _ := newSpaceServiceForTest(ctrl)

		users.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := svc.GetUserData(context.Background(), 9)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("spaces read failure", func(t *testing.T) {
		svc, _, reader, users, _, _ := newSpaceServiceForTest(ctrl)

		users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(user, nil)
		reader.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(nil, errors.New("query failed"))

		_, err := svc.GetUserData(context.Background(), 7)
		assert.Error(t, err)
	})
}
