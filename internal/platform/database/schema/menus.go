package schema

// MenusTable represents the 'menus' table
type MenusTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	Type      string
	ParentID  string
	URL       string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// Menus is the schema definition for menus
var Menus = MenusTable{
	Table:     "menus",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	Type:      "type",
	ParentID:  "parent_id",
	URL:       "url",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
