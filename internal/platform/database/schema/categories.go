package schema

// CategoriesTable represents the 'categories' table
type CategoriesTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// Categories is the schema definition for categories
var Categories = CategoriesTable{
	Table:     "categories",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
}
