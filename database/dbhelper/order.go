package dbhelper

import (
	"database/sql"
	"time"

	"github.com/ray-remotestate/bistro/models"
)

const orderColumns = `id, customer_id, order_date, status, created_at, updated_at, created_by, updated_by`

func scanOrder(row *sql.Row) (models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status,
		&o.CreatedAt, &o.UpdatedAt, &o.CreatedBy, &o.UpdatedBy)
	return o, err
}

func GetOrderByID(tx *sql.Tx, id int) (models.Order, error) {
	return scanOrder(tx.QueryRow(`
		SELECT `+orderColumns+` FROM orders
		WHERE id = $1`, id))
}

func CreateOrder(tx *sql.Tx, req models.OrderRequest) (models.Order, error) {
	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}
	status := string(models.StatusPending)
	if req.Status != nil {
		status = *req.Status
	}
	return scanOrder(tx.QueryRow(`
		INSERT INTO orders (customer_id, order_date, status, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+orderColumns,
		req.CustomerID, orderDate, status, models.DefaultActor))
}

// UpdateOrder overwrites customer_id and status. An omitted status falls back to
// PENDING, the request schema's default.
func UpdateOrder(tx *sql.Tx, id int, req models.OrderRequest) (models.Order, error) {
	status := string(models.StatusPending)
	if req.Status != nil {
		status = *req.Status
	}
	return scanOrder(tx.QueryRow(`
		UPDATE orders
		SET customer_id = $1, status = $2, updated_at = now(), updated_by = $3
		WHERE id = $4
		RETURNING `+orderColumns,
		req.CustomerID, status, models.DefaultActor, id))
}
