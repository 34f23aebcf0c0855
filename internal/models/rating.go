package models

// Rating is one voter's current 1..10 rating of a movie, upserted on the
// composite primary key like Vote.
type Rating struct {
	MovieID   int64  `gorm:"primaryKey" json:"movie_id"`
	VoterID   string `gorm:"primaryKey" json:"voter_id"`
	Value     int    `gorm:"not null" json:"value"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli" json:"updated_at"`
}

// RatingAggregate is the computed per-movie summary. Average is 0, not NaN,
// when no ratings exist.
type RatingAggregate struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}
