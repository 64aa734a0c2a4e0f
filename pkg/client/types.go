package client

import "time"

// Wire types mirror the server's JSON contract.

type Book struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Cover      *string   `json:"cover"`
	Intro      *string   `json:"intro"`
	FileSize   int64     `json:"file_size"`
	CategoryID *int64    `json:"category_id"`
	Tag        *string   `json:"tag"`
	HotValue   int64     `json:"hot_value"`
	Downloads  int64     `json:"downloads"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookDetail struct {
	Book

	MD5        *string `json:"md5"`
	FileName   *string `json:"file_name"`
	StoredName *string `json:"stored_name"`
	FileURL    *string `json:"file_url"`
	Parts      int     `json:"parts"`

	Ratings []BookRating `json:"ratings"`
}

type BookRating struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	RatingTypeID int64     `json:"rating_type_id"`
	RatingName   string    `json:"rating_name"`
	Level        int       `json:"level"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"book_count"`
}

type PaginatedBooks struct {
	List  []Book `json:"list"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type Chapter struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"book_id"`
	Title      string  `json:"title"`
	VolumeName string  `json:"volume_name"`
	WordCount  int64   `json:"word_count"`
	SourceURL  *string `json:"source_url"`
	IsVIP      bool    `json:"is_vip"`
}

type SyncResult struct {
	BookID       int64 `json:"book_id"`
	ChapterCount int   `json:"chapter_count"`
	WordCount    int64 `json:"word_count"`
}

type RatingType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
}

type Rating struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	RatingTypeID int64     `json:"rating_type_id"`
	UserID       *int64    `json:"user_id"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type RatingTypeStats struct {
	RatingType
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type BookRatingStats struct {
	BookID       int64             `json:"book_id"`
	TotalRatings int               `json:"total_ratings"`
	RatingTypes  []RatingTypeStats `json:"rating_types"`
}

type TagCloudEntry struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	UseCount int64  `json:"use_count"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Nickname     string    `json:"nickname"`
	Avatar       string    `json:"avatar"`
	Email        string    `json:"email"`
	Introduction string    `json:"introduction"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"create_time"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CategoryPreference struct {
	CategoryID      int64 `json:"category_id"`
	PreferenceLevel int   `json:"preference_level"`
}

type TagPreference struct {
	TagName         string `json:"tag_name"`
	PreferenceLevel int    `json:"preference_level"`
}

type UserPreferences struct {
	ReadingTimeRange    string                       `json:"reading_time_range"`
	PreferredLength     string                       `json:"preferred_length"`
	UpdateFrequency     string                       `json:"update_frequency"`
	SeriesPreference    bool                         `json:"series_preference"`
	UpdateNotification  bool                         `json:"update_notification"`
	CategoryPreferences map[int64]CategoryPreference `json:"category_preferences"`
	TagPreferences      map[string]TagPreference     `json:"tag_preferences"`
}

type PreferenceStatus struct {
	HasSetPreferences bool `json:"has_set_preferences"`
}
