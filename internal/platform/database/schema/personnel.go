package schema

// PersonnelTable represents the 'personnel' table
type PersonnelTable struct {
	Table         string
	ID            string
	AcademicTitle string
	Name          string
	Position      string
	Department    string
	ProfileLink   string
	ImageURL      string
	Type          string
	GroupName     string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
}

// Personnel is the schema definition for personnel
var Personnel = PersonnelTable{
	Table:         "personnel",
	ID:            "id",
	AcademicTitle: "academic_title",
	Name:          "name",
	Position:      "position",
	Department:    "department",
	ProfileLink:   "profile_link",
	ImageURL:      "image_url",
	Type:          "type",
	GroupName:     "group_name",
	SortOrder:     "sort_order",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}
