package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFloorPlanWriteRepositorySave(t *testing.T) {
	db, mock := newSQLMockDB(t)

	mock.ExpectQuery("INSERT INTO floor_plans").
		WithArgs(int64(7), "plan.png", "uploads/abc123_1700000000.png", "image/png", int64(2048)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(31)))

	repo := NewFloorPlanWriteRepository(db)
	id, err := repo.Save(context.Background(), 7, "plan.png", "uploads/abc123_1700000000.png", "image/png", 2048)

	assert.NoError(t, err)
	assert.Equal(t, int64(31), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorPlanWriteRepositorySaveError(t *testing.T) {
	db, mock := newSQLMockDB(t)

	mock.ExpectQuery("INSERT INTO floor_plans").
		WillReturnError(errors.New("insert failed"))

	repo := NewFloorPlanWriteRepository(db)
	_, err := repo.Save(context.Background(), 7, "plan.png", "uploads/x.png", "image/png", 2048)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorPlanReadRepositoryListRecentByUserID(t *testing.T) {
	db, mock := newSQLMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "file_name", "stored_path", "mime_type", "size_bytes", "uploaded_at"}).
		AddRow(int64(32), int64(7), "second.pdf", "uploads/def_1700000100.pdf", "application/pdf", int64(4096), testTime()).
		AddRow(int64(31), int64(7), "first.png", "uploads/abc_1700000000.png", "image/png", int64(2048), testTime())

	mock.ExpectQuery("SELECT id, user_id, file_name, stored_path, mime_type, size_bytes, uploaded_at").
		WithArgs(int64(7), 5).
		WillReturnRows(rows)

	repo := NewFloorPlanReadRepository(db)
	plans, err := repo.ListRecentByUserID(context.Background(), 7, 5)

	assert.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.Equal(t, "second.pdf", plans[0].FileName)
	assert.Equal(t, "image/png", plans[1].MimeType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorPlanReadRepositoryListRecentEmpty(t *testing.T) {
	db, mock := newSQLMockDB(t)

	mock.ExpectQuery("SELECT id, user_id, file_name, stored_path, mime_type, size_bytes, uploaded_at").
		WithArgs(int64(99), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "file_name", "stored_path", "mime_type", "size_bytes", "uploaded_at"}))

	repo := NewFloorPlanReadRepository(db)
	plans, err := repo.ListRecentByUserID(context.Background(), 99, 5)

	assert.NoError(t, err)
	assert.Empty(t, plans)
	assert.NoError(t, mock.ExpectationsWereMet())
}
