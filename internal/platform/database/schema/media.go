package schema

// MediaTable represents the 'media' table
type MediaTable struct {
	Table     string
	ID        string
	FileName  string
	FilePath  string
	FileType  string
	FileSize  string
	IsFolder  string
	ParentID  string
	CreatedAt string
}

// Media is the schema definition for media
var Media = MediaTable{
	Table:     "media",
	ID:        "id",
	FileName:  "file_name",
	FilePath:  "file_path",
	FileType:  "file_type",
	FileSize:  "file_size",
	IsFolder:  "is_folder",
	ParentID:  "parent_id",
	CreatedAt: "created_at",
}
