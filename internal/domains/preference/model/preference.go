package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ReadingTimeRange string

const (
	ReadingMorning   ReadingTimeRange = "MORNING"
	ReadingAfternoon ReadingTimeRange = "AFTERNOON"
	ReadingEvening   ReadingTimeRange = "EVENING"
	ReadingNight     ReadingTimeRange = "NIGHT"
)

type PreferredLength string

const (
	LengthShort  PreferredLength = "SHORT"  // under 100k words
	LengthMedium PreferredLength = "MEDIUM" // 100k-500k words
	LengthLong   PreferredLength = "LONG"   // 500k-1M words
	LengthEpic   PreferredLength = "EPIC"   // over 1M words
)

type UpdateFrequency string

const (
	FrequencyDaily     UpdateFrequency = "DAILY"
	FrequencyWeekly    UpdateFrequency = "WEEKLY"
	FrequencyMultiple  UpdateFrequency = "MULTIPLE"
	FrequencyCompleted UpdateFrequency = "COMPLETED"
)

// CategoryPreference grades interest in one category, 0-100.
type CategoryPreference struct {
	CategoryID      int64 `json:"category_id"`
	PreferenceLevel int   `json:"preference_level"`
}

// TagPreference grades interest in one tag, 0-100.
type TagPreference struct {
	TagName         string `json:"tag_name"`
	PreferenceLevel int    `json:"preference_level"`
}

// UserPreferences is the serialized preference blob stored on the user row.
type UserPreferences struct {
	ReadingTimeRange    ReadingTimeRange             `json:"reading_time_range"`
	PreferredLength     PreferredLength              `json:"preferred_length"`
	UpdateFrequency     UpdateFrequency              `json:"update_frequency"`
	SeriesPreference    bool                         `json:"series_preference"`
	UpdateNotification  bool                         `json:"update_notification"`
	CategoryPreferences map[int64]CategoryPreference `json:"category_preferences"`
	TagPreferences      map[string]TagPreference     `json:"tag_preferences"`
}

func (p UserPreferences) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.ReadingTimeRange,
			validation.Required,
			validation.In(ReadingMorning, ReadingAfternoon, ReadingEvening, ReadingNight).
				Error("invalid reading time range"),
		),
		validation.Field(&p.PreferredLength,
			validation.Required,
			validation.In(LengthShort, LengthMedium, LengthLong, LengthEpic).
				Error("invalid preferred length"),
		),
		validation.Field(&p.UpdateFrequency,
			validation.Required,
			validation.In(FrequencyDaily, FrequencyWeekly, FrequencyMultiple, FrequencyCompleted).
				Error("invalid update frequency"),
		),
	)
	if err != nil {
		return err
	}

	for _, pref := range p.CategoryPreferences {
		if pref.PreferenceLevel < 0 || pref.PreferenceLevel > 100 {
			return validation.NewError("validation_preference_level", "category preference level must be 0-100")
		}
	}
	for _, pref := range p.TagPreferences {
		if pref.PreferenceLevel < 0 || pref.PreferenceLevel > 100 {
			return validation.NewError("validation_preference_level", "tag preference level must be 0-100")
		}
	}
	return nil
}

// StatusResult reports whether the user has saved preferences yet.
type StatusResult struct {
	HasSetPreferences bool `json:"has_set_preferences"`
}
