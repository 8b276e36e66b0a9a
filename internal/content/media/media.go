// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package media

import "time"

// Item is one media library row: either a folder or a file entry.
//
// # Folder Tree
//
// Folders and files share the table; ParentID builds the tree with 0 as
// the root. Folders have no path, type, or size. File rows reference the
// stored file by its public path — deleting a row does not remove the
// file from disk.
type Item struct {
	ID        int       `json:"id"`
	FileName  string    `json:"file_name"`
	FilePath  *string   `json:"file_path"`
	FileType  *string   `json:"file_type"` // Lowercase extension including the dot.
	FileSize  *int64    `json:"file_size"`
	IsFolder  bool      `json:"is_folder"`
	ParentID  int       `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}
