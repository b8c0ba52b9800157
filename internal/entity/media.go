package entity

import "time"

// Media is a stored upload: the row in the media table plus the key of the
// backing file in the local store. DeletedAt == nil means the record is active.
type Media struct {
	ID int64 `json:"id"`

	OriginalFileName string `json:"originalFileName"`
	StoredFileName   string `json:"storedFileName"`
	MimeType         string `json:"mimeType"`

	Width    int   `json:"width"`
	Height   int   `json:"height"`
	FileSize int64 `json:"fileSize"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
