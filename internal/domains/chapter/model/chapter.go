package model

// Chapter belongs to exactly one book. ID doubles as the ordering key
// within the book; the volume a chapter belongs to is only a grouping key,
// never a stored entity.
type Chapter struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"book_id"`
	Title      string  `json:"title"`
	VolumeName string  `json:"volume_name"`
	WordCount  int64   `json:"word_count"`
	SourceURL  *string `json:"source_url"`
	IsVIP      bool    `json:"is_vip"`
}

// SyncResult reports the outcome of a chapter re-synchronization.
type SyncResult struct {
	BookID       int64 `json:"book_id"`
	ChapterCount int   `json:"chapter_count"`
	WordCount    int64 `json:"word_count"`
}
