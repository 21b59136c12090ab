package repositories

import (
	"database/sql"

	"kiosk-server/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List() ([]models.Product, error) {
	rows, err := r.db.Query(`
		SELECT id, name, price, image_url, category, in_stock
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {

		}
	}(rows)

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Category, &p.InStock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(req *models.ProductRequest) (*models.Product, error) {
	req.ApplyDefaults()

	result, err := r.db.Exec(
		"INSERT INTO products (name, price, image_url, category, in_stock) VALUES (?, ?, ?, ?, ?)",
		req.Name, req.Price, req.ImageURL, req.Category, *req.InStock,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.getByID(int(id))
}

// Update 整行替换。通过重新读取确认记录存在：MySQL 在新旧值相同时
// RowsAffected 返回 0，不能用它判断未命中
func (r *ProductRepository) Update(id int, req *models.ProductRequest) (*models.Product, error) {
	req.ApplyDefaults()

	_, err := r.db.Exec(
		"UPDATE products SET name = ?, price = ?, image_url = ?, category = ?, in_stock = ? WHERE id = ?",
		req.Name, req.Price, req.ImageURL, req.Category, *req.InStock, id,
	)
	if err != nil {
		return nil, err
	}

	return r.getByID(id)
}

// Delete 幂等删除：id 未命中任何行也不算错误
func (r *ProductRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM products WHERE id = ?", id)
	return err
}

func (r *ProductRepository) ToggleStock(id int) (*models.Product, error) {
	_, err := r.db.Exec("UPDATE products SET in_stock = NOT in_stock WHERE id = ?", id)
	if err != nil {
		return nil, err
	}

	return r.getByID(id)
}

func (r *ProductRepository) getByID(id int) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(`
		SELECT id, name, price, image_url, category, in_stock
		FROM products
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Category, &p.InStock)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
