package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFavoriteTestRepository(t *testing.T) (*favoriteRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupTestDB(t)
	return NewFavoriteRepository(db), mock, cleanup
}

func TestFavoriteRepository_Toggle(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expected      bool
		expectedError bool
	}{
		{
			name: "adds missing favorite",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM favorites WHERE user_id = \? AND course_id = \? FOR UPDATE`).
					WithArgs("u1", "c1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectExec(`INSERT INTO favorites`).WithArgs("u1", "c1").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expected: true,
		},
		{
			name: "removes existing favorite",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM favorites`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
				mock.ExpectExec(`DELETE FROM favorites WHERE id = \?`).WithArgs(8).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expected: false,
		},
		{
			name: "concurrent insert counts as favorited",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM favorites`).WillReturnError(sql.ErrNoRows)
				mock.ExpectExec(`INSERT INTO favorites`).WillReturnError(errDuplicateEntry)
				mock.ExpectCommit()
			},
			expected: true,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM favorites`).WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupFavoriteTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			favorited, err := repo.Toggle(context.Background(), "u1", "c1")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, favorited)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepository_ListCourseIDs(t *testing.T) {
	repo, mock, cleanup := setupFavoriteTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT course_id FROM favorites WHERE user_id = \?`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"course_id"}).AddRow("c2").AddRow("c1"))

	ids, err := repo.ListCourseIDs(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_Exists(t *testing.T) {
	repo, mock, cleanup := setupFavoriteTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), "u1", "c1")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
