package dbhelper

import (
	"database/sql"

	"github.com/ray-remotestate/bistro/models"
)

const menuItemColumns = `id, active, name, description, price, created_at, updated_at, created_by, updated_by`

func scanMenuItem(row *sql.Row) (models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(&m.ID, &m.Active, &m.Name, &m.Description, &m.Price,
		&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy)
	return m, err
}

// ListActiveMenuItems returns the menu as customers see it: inactive items are
// filtered out.
func ListActiveMenuItems(tx *sql.Tx) ([]models.MenuItem, error) {
	rows, err := tx.Query(`
		SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE active
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Active, &m.Name, &m.Description, &m.Price,
			&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// GetMenuItemByName matches case-insensitively; with duplicate names the lowest
// id wins.
func GetMenuItemByName(tx *sql.Tx, name string) (models.MenuItem, error) {
	return scanMenuItem(tx.QueryRow(`
		SELECT `+menuItemColumns+` FROM menu_items
		WHERE LOWER(name) = LOWER($1)
		ORDER BY id
		LIMIT 1`, name))
}

func CreateMenuItem(tx *sql.Tx, req models.MenuItemRequest) (models.MenuItem, error) {
	return scanMenuItem(tx.QueryRow(`
		INSERT INTO menu_items (active, name, description, price, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+menuItemColumns,
		req.Active, req.Name, req.Description, req.Price, models.DefaultActor))
}

func UpdateMenuItem(tx *sql.Tx, id int, req models.MenuItemRequest) (models.MenuItem, error) {
	return scanMenuItem(tx.QueryRow(`
		UPDATE menu_items
		SET active = $1, name = $2, description = $3, price = $4, updated_at = now(), updated_by = $5
		WHERE id = $6
		RETURNING `+menuItemColumns,
		req.Active, req.Name, req.Description, req.Price, models.DefaultActor, id))
}
