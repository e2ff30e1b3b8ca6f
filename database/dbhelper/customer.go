package dbhelper

import (
	"database/sql"

	"github.com/ray-remotestate/bistro/models"
)

const customerColumns = `id, name, phone_number, email, created_at, updated_at, created_by, updated_by`

func scanCustomer(row *sql.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Email,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy)
	return c, err
}

func ListCustomers(tx *sql.Tx) ([]models.Customer, error) {
	rows, err := tx.Query(`SELECT ` + customerColumns + ` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Email,
			&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func GetCustomerByID(tx *sql.Tx, id int) (models.Customer, error) {
	return scanCustomer(tx.QueryRow(`
		SELECT `+customerColumns+` FROM customers
		WHERE id = $1`, id))
}

func CreateCustomer(tx *sql.Tx, req models.CustomerRequest) (models.Customer, error) {
	return scanCustomer(tx.QueryRow(`
		INSERT INTO customers (name, phone_number, email, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+customerColumns,
		req.Name, req.PhoneNumber, req.Email, models.DefaultActor))
}

func UpdateCustomer(tx *sql.Tx, id int, req models.CustomerRequest) (models.Customer, error) {
	return scanCustomer(tx.QueryRow(`
		UPDATE customers
		SET name = $1, phone_number = $2, email = $3, updated_at = now(), updated_by = $4
		WHERE id = $5
		RETURNING `+customerColumns,
		req.Name, req.PhoneNumber, req.Email, models.DefaultActor, id))
}

func DeleteCustomer(tx *sql.Tx, id int) error {
	res, err := tx.Exec(`DELETE FROM customers WHERE id = $1`, id)
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
