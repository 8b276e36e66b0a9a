package schema

// ArticlesTable represents the 'articles' table
type ArticlesTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	Content       string
	ImageURL      string
	CategoryID    string
	Status        string
	PublishDate   string
	AuthorID      string
	GalleryImages string
	Views         string
	CreatedAt     string
	UpdatedAt     string
}

// Articles is the schema definition for articles
var Articles = ArticlesTable{
	Table:         "articles",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	Content:       "content",
	ImageURL:      "image_url",
	CategoryID:    "category_id",
	Status:        "status",
	PublishDate:   "publish_date",
	AuthorID:      "author_id",
	GalleryImages: "gallery_images",
	Views:         "views",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t ArticlesTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Content, t.ImageURL, t.CategoryID,
		t.Status, t.PublishDate, t.AuthorID, t.GalleryImages, t.Views,
		t.CreatedAt, t.UpdatedAt,
	}
}
