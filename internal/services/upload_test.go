package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

const uploadTestMaxBytes = 5 * 1024 * 1024

var uploadTestAllowedTypes = []string{"image/jpeg", "image/png", "application/pdf"}

// pngBytes is a minimal payload the content sniffer identifies as image/png.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// pdfBytes is a minimal payload the content sniffer identifies as application/pdf.
var pdfBytes = []byte("%PDF-1.4\n%fake")

func newUploadServiceForTest(ctrl *gomock.Controller) (*UploadService, *MockBlobStore, *MockFloorPlanWriter, *MockActivityAppender) {
	store := NewMockBlobStore(ctrl)
	writer := NewMockFloorPlanWriter(ctrl)
	activity := NewMockActivityAppender(ctrl)
	svc := NewUploadService(store, writer, activity, nil, uploadTestMaxBytes, uploadTestAllowedTypes, "http://localhost:8080")
	return svc, store, writer, activity
}

func TestUploadServiceStoreFloorPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc, store, writer, activity := newUploadServiceForTest(ctrl)

		var storedName string
		store.EXPECT().
			Save(gomock.Any(), gomock.Any(), pngBytes).
			DoAndReturn(func(_ context.Context, name string, _ []byte) error {
				storedName = name
				return nil
			})
		writer.EXPECT().
			Save(gomock.Any(), int64(7), "plan.png", gomock.Any(), "image/png", int64(len(pngBytes))).
			Return(int64(3), nil)
		activity.EXPECT().
			Append(gomock.Any(), int64(7), models.ActionFloorPlanUpload, "Uploaded 1 floor plan(s)", "10.0.0.1").
			Return(nil)

		uploaded, err := svc.StoreFloorPlans(context.Background(), 7, []FileUpload{
			{Name: "plan.png", Size: int64(len(pngBytes)), Content: pngBytes},
		}, "10.0.0.1")
		assert.NoError(t, err)
		assert.Len(t, uploaded, 1)
		assert.Equal(t, int64(3), uploaded[0].ID)
		assert.Equal(t, "plan.png", uploaded[0].Name)
		assert.Equal(t, "image/png", uploaded[0].Type)
		assert.Equal(t, "http://localhost:8080/uploads/"+storedName, uploaded[0].URL)

		// The stored name is generated, never the client-supplied name.
		assert.NotEqual(t, "plan.png", storedName)
		assert.True(t, strings.HasSuffix(storedName, ".png"))
	})

	t.Run("empty batch", func(t *testing.T) {
		svc, _, _, _ := newUploadServiceForTest(ctrl)

		_, err := svc.StoreFloorPlans(context.Background(), 7, nil, "10.0.0.1")
		assert.True(t, validation.IsValidation(err))
		assert.EqualError(t, err, "No files uploaded")
	})

	t.Run("oversized file rejected before any write", func(t *testing.T) {
		// No Save expectations: a blob or metadata write would fail the test.
		svc, _, _, _ := newUploadServiceForTest(ctrl)

		big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, uploadTestMaxBytes)...)
		_, err := svc.StoreFloorPlans(context.Background(), 7, []FileUpload{
			{Name: "big.png", Size: int64(len(big)), Content: big},
		}, "10.0.0.1")
		assert.True(t, validation.IsValidation(err))
		assert.EqualError(t, err, "File too large: big.png (Max: 5MB)")
	})

	t.Run("disallowed type rejected by sniffed content", func(t *testing.T) {
		svc, _, _, _ := newUploadServiceForTest(ctrl)

		// Client-declared name says png, content says plain text.
		_, err := svc.StoreFloorPlans(context.Background(), 7, []FileUpload{
			{Name: "plan.png", Size: 10, Content: []byte("not a png")},
		}, "10.0.0.1")
		assert.True(t, validation.IsValidation(err))
		assert.EqualError(t, err, "Invalid file type for: plan.png")
	})

	t.Run("one bad file rejects the whole batch before any write", func(t *testing.T) {
		svc, _, _, _ := newUploadServiceForTest(ctrl)

		_, err := svc.StoreFloorPlans(context.Background(), 7, []FileUpload{
			{Name: "plan.png", Size: int64(len(pngBytes)), Content: pngBytes},
			{Name: "notes.txt", Size: 10, Content: []byte("plain text")},
		}, "10.0.0.1")
		assert.True(t, validation.IsValidation(err))
		assert.EqualError(t, err, "Invalid file type for: notes.txt")
	})

	t.Run("metadata failure removes the orphaned blob", func(t *testing.T) {
		svc, store, writer, _ := newUploadServiceForTest(ctrl)

		var storedName string
		store.EXPECT().
			Save(gomock.Any(), gomock.Any(), pdfBytes).
			DoAndReturn(func(_ context.Context, name string, _ []byte) error {
				storedName = name
				return nil
			})
		writer.EXPECT().
			Save(gomock.Any(), int64(7), "plan.pdf", gomock.Any(), "application/pdf", int64(len(pdfBytes))).
			Return(int64(0), errors.New("insert failed"))
		store.EXPECT().
			Remove(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, name string) error {
				assert.Equal(t, storedName, name)
				return nil
			})

		_, err := svc.StoreFloorPlans(context.Background(), 7, []FileUpload{
			{Name: "plan.pdf", Size: int64(len(pdfBytes)), Content: pdfBytes},
		}, "10.0.0.1")
		assert.Error(t, err)
	})
}

func TestStoredFileName(t *testing.T) {
	a := storedFileName("plan.PNG")
	b := storedFileName("plan.PNG")

	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "plan")
}
