package handlers

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentCols = []string{"id", "order_id", "payment_date", "amount", "payment_method", "paid", "created_at", "updated_at", "created_by", "updated_by"}

// An omitted payment_method falls back to CASH.
func TestCreatePaymentDefaultMethod(t *testing.T) {
	mock := setupMock(t)
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payment_transactions").
		WithArgs(10, sqlmock.AnyArg(), 19.0, "CASH", false, "app_service").
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(1, 10, now, 19.0, "CASH", false, now, now, "app_service", "app_service"))
	mock.ExpectCommit()

	rec, env := doRequest(t, http.MethodPost, "/payment/", map[string]interface{}{
		"order_id": 10,
		"amount":   19.0,
		"paid":     false,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "CASH", env.Data[0]["payment_method"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentInvalidMethod(t *testing.T) {
	rec, env := doRequest(t, http.MethodPost, "/payment/", map[string]interface{}{
		"order_id":       10,
		"amount":         19.0,
		"paid":           false,
		"payment_method": "CHEQUE",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldErrors(t, env), "payment_method")
}

func TestCreatePaymentMissingPaid(t *testing.T) {
	rec, env := doRequest(t, http.MethodPost, "/payment/", map[string]interface{}{
		"order_id": 10,
		"amount":   19.0,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldErrors(t, env), "paid")
}

func TestGetPaymentNotFound(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM payment_transactions").
		WithArgs(10).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec, _ := doRequest(t, http.MethodGet, "/payment/10", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"data":[],"error":"Payment transaction not found"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePayment(t *testing.T) {
	mock := setupMock(t)
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM payment_transactions").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(1, 10, now, 19.0, "CASH", false, now, now, "app_service", "app_service"))
	mock.ExpectQuery("UPDATE payment_transactions").
		WithArgs(10, 19.0, "CARD", true, "app_service", 1).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(1, 10, now, 19.0, "CARD", true, now, now, "app_service", "app_service"))
	mock.ExpectCommit()

	rec, env := doRequest(t, http.MethodPut, "/payment/1", map[string]interface{}{
		"order_id":       10,
		"amount":         19.0,
		"payment_method": "CARD",
		"paid":           true,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Data, 1)
	assert.Equal(t, true, env.Data[0]["paid"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentNotFound(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM payment_transactions").
		WithArgs(8).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec, _ := doRequest(t, http.MethodPut, "/payment/8", map[string]interface{}{
		"order_id": 10,
		"amount":   19.0,
		"paid":     true,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"data":[],"error":"Payment transaction not found for update"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
