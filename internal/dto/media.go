package dto

// UpdateMedia is a partial field set for PUT /media/:id.
// Nil pointers mean "leave unchanged". The record id comes from the path and
// is never part of the update set.
type UpdateMedia struct {
	OriginalFileName *string `json:"originalFileName"`
	MimeType         *string `json:"mimeType"`
	Width            *int    `json:"width"`
	Height           *int    `json:"height"`
	FileSize         *int64  `json:"fileSize"`
}

// Empty reports whether no field is present.
func (u UpdateMedia) Empty() bool {
	return u.OriginalFileName == nil && u.MimeType == nil &&
		u.Width == nil && u.Height == nil && u.FileSize == nil
}
