package schema

// HeroSlidersTable represents the 'hero_sliders' table
type HeroSlidersTable struct {
	Table          string
	ID             string
	ImageURL       string
	Title          string
	Subtitle       string
	ButtonText     string
	ButtonLink     string
	OverlayEnabled string
	SortOrder      string
	IsActive       string
	CreatedAt      string
	UpdatedAt      string
}

// HeroSliders is the schema definition for hero_sliders
var HeroSliders = HeroSlidersTable{
	Table:          "hero_sliders",
	ID:             "id",
	ImageURL:       "image_url",
	Title:          "title",
	Subtitle:       "subtitle",
	ButtonText:     "button_text",
	ButtonLink:     "button_link",
	OverlayEnabled: "overlay_enabled",
	SortOrder:      "sort_order",
	IsActive:       "is_active",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}
