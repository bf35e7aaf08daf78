package models

type Product struct {
	ID       string
	Name     string
	Price    float64
	Stock    int
	Category string
}

// NewProduct creates a catalog entry, defaulting the category to "General".
func NewProduct(id, name string, price float64, stock int, category string) *Product {
	if category == "" {
		category = "General"
	}
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
	}
}

func (p *Product) ToRecord() Record {
	return Record{
		"product_id": p.ID,
		"name":       p.Name,
		"price":      p.Price,
		"stock":      p.Stock,
		"category":   p.Category,
	}
}

func ProductFromRecord(rec Record) (*Product, error) {
	const entity = "product"

	id, err := recString(rec, entity, "product_id")
	if err != nil {
		return nil, err
	}
	name, err := recString(rec, entity, "name")
	if err != nil {
		return nil, err
	}
	price, err := recFloat(rec, entity, "price")
	if err != nil {
		return nil, err
	}
	stock, err := recInt(rec, entity, "stock")
	if err != nil {
		return nil, err
	}
	category, err := recString(rec, entity, "category")
	if err != nil {
		return nil, err
	}

	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
	}, nil
}
