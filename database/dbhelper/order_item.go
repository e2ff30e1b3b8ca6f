package dbhelper

import (
	"database/sql"

	"github.com/ray-remotestate/bistro/models"
)

const orderItemColumns = `id, order_id, menu_item_id, quantity, created_at, updated_at, created_by, updated_by`

func scanOrderItem(row *sql.Row) (models.OrderItem, error) {
	var oi models.OrderItem
	err := row.Scan(&oi.ID, &oi.OrderID, &oi.MenuItemID, &oi.Quantity,
		&oi.CreatedAt, &oi.UpdatedAt, &oi.CreatedBy, &oi.UpdatedBy)
	return oi, err
}

func ListOrderItemsByOrder(tx *sql.Tx, orderID int) ([]models.OrderItem, error) {
	rows, err := tx.Query(`
		SELECT `+orderItemColumns+` FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var oi models.OrderItem
		if err := rows.Scan(&oi.ID, &oi.OrderID, &oi.MenuItemID, &oi.Quantity,
			&oi.CreatedAt, &oi.UpdatedAt, &oi.CreatedBy, &oi.UpdatedBy); err != nil {
			return nil, err
		}
		items = append(items, oi)
	}
	return items, rows.Err()
}

func GetOrderItemByID(tx *sql.Tx, id int) (models.OrderItem, error) {
	return scanOrderItem(tx.QueryRow(`
		SELECT `+orderItemColumns+` FROM order_items
		WHERE id = $1`, id))
}

func CreateOrderItem(tx *sql.Tx, req models.OrderItemRequest) (models.OrderItem, error) {
	return scanOrderItem(tx.QueryRow(`
		INSERT INTO order_items (order_id, menu_item_id, quantity, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+orderItemColumns,
		req.OrderID, req.MenuItemID, req.Quantity, models.DefaultActor))
}

func UpdateOrderItem(tx *sql.Tx, id int, req models.OrderItemRequest) (models.OrderItem, error) {
	return scanOrderItem(tx.QueryRow(`
		UPDATE order_items
		SET order_id = $1, menu_item_id = $2, quantity = $3, updated_at = now(), updated_by = $4
		WHERE id = $5
		RETURNING `+orderItemColumns,
		req.OrderID, req.MenuItemID, req.Quantity, models.DefaultActor, id))
}

// DeleteOrderItem removes a single line item located by its composite business
// key. With duplicates the lowest id goes first.
func DeleteOrderItem(tx *sql.Tx, orderID, menuItemID int) error {
	res, err := tx.Exec(`
		DELETE FROM order_items
		WHERE id = (
			SELECT id FROM order_items
			WHERE order_id = $1 AND menu_item_id = $2
			ORDER BY id
			LIMIT 1
		)`, orderID, menuItemID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
