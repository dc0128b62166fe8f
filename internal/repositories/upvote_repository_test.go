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

func setupUpvoteTestRepository(t *testing.T) (*upvoteRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupTestDB(t)
	return NewUpvoteRepository(db), mock, cleanup
}

func TestUpvoteRepository_Toggle(t *testing.T) {
	tests := []struct {
		name            string
		setupMock       func(sqlmock.Sqlmock)
		expectedUpvoted bool
		expectedCount   int
		expectedError   error
	}{
		{
			name: "adds upvote and recounts",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM study_materials WHERE id = \? FOR UPDATE`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("u1", 5).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO user_upvotes`).WithArgs("u1", 5).WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec(`UPDATE study_materials SET upvotes = \(SELECT COUNT\(\*\) FROM user_upvotes`).
					WithArgs(5, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT upvotes FROM study_materials`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"upvotes"}).AddRow(3))
				mock.ExpectCommit()
			},
			expectedUpvoted: true,
			expectedCount:   3,
		},
		{
			name: "removes upvote",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM study_materials`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
				mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectExec(`DELETE FROM user_upvotes`).WithArgs("u1", 5).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE study_materials`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT upvotes FROM study_materials`).WillReturnRows(sqlmock.NewRows([]string{"upvotes"}).AddRow(0))
				mock.ExpectCommit()
			},
			expectedUpvoted: false,
			expectedCount:   0,
		},
		{
			name: "material not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM study_materials`).WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrNotFound,
		},
		{
			name: "insert failure rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM study_materials`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
				mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO user_upvotes`).WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUpvoteTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			upvoted, count, err := repo.Toggle(context.Background(), "u1", 5)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUpvoted, upvoted)
				assert.Equal(t, tt.expectedCount, count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpvoteRepository_Exists(t *testing.T) {
	repo, mock, cleanup := setupUpvoteTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM user_upvotes`).
		WithArgs("u1", 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), "u1", 5)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
