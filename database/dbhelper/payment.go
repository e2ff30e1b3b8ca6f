package dbhelper

import (
	"database/sql"
	"time"

	"github.com/ray-remotestate/bistro/models"
)

const paymentColumns = `id, order_id, payment_date, amount, payment_method, paid, created_at, updated_at, created_by, updated_by`

func scanPayment(row *sql.Row) (models.PaymentTransaction, error) {
	var p models.PaymentTransaction
	err := row.Scan(&p.ID, &p.OrderID, &p.PaymentDate, &p.Amount, &p.PaymentMethod, &p.Paid,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy)
	return p, err
}

func GetPaymentByID(tx *sql.Tx, id int) (models.PaymentTransaction, error) {
	return scanPayment(tx.QueryRow(`
		SELECT `+paymentColumns+` FROM payment_transactions
		WHERE id = $1`, id))
}

func CreatePayment(tx *sql.Tx, req models.PaymentRequest) (models.PaymentTransaction, error) {
	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}
	method := string(models.MethodCash)
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}
	return scanPayment(tx.QueryRow(`
		INSERT INTO payment_transactions (order_id, payment_date, amount, payment_method, paid, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+paymentColumns,
		req.OrderID, paymentDate, req.Amount, method, req.Paid, models.DefaultActor))
}

// UpdatePayment overwrites order_id, amount, payment_method and paid;
// payment_date is fixed at creation.
func UpdatePayment(tx *sql.Tx, id int, req models.PaymentRequest) (models.PaymentTransaction, error) {
	method := string(models.MethodCash)
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}
	return scanPayment(tx.QueryRow(`
		UPDATE payment_transactions
		SET order_id = $1, amount = $2, payment_method = $3, paid = $4, updated_at = now(), updated_by = $5
		WHERE id = $6
		RETURNING `+paymentColumns,
		req.OrderID, req.Amount, method, req.Paid, models.DefaultActor, id))
}
