package schema

// SiteSettingsTable represents the 'site_settings' table
type SiteSettingsTable struct {
	Table        string
	SettingKey   string
	SettingValue string
	UpdatedAt    string
}

// SiteSettings is the schema definition for site_settings
var SiteSettings = SiteSettingsTable{
	Table:        "site_settings",
	SettingKey:   "setting_key",
	SettingValue: "setting_value",
	UpdatedAt:    "updated_at",
}
