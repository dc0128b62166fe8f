package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/studyforge/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaymentTestRepository(t *testing.T) (*paymentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupTestDB(t)
	return NewPaymentRepository(db), mock, cleanup
}

func TestPaymentRepository_ExistsBySessionID(t *testing.T) {
	repo, mock, cleanup := setupPaymentTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM payment_records WHERE session_id = \?\)`).
		WithArgs("cs_1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsBySessionID(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expected      bool
		expectedError bool
	}{
		{
			name: "inserted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO payment_records`).
					WithArgs("cus_1", "cs_1").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expected: true,
		},
		{
			name: "already recorded",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO payment_records`).WillReturnError(errDuplicateEntry)
			},
			expected: false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO payment_records`).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			created, err := repo.Create(context.Background(), &models.PaymentRecord{CustomerID: "cus_1", SessionID: "cs_1"})

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, created)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
