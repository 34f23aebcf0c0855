package models

// Vote is one voter's current stance on one message, value -1 or +1.
// The composite primary key makes repeat votes an upsert, never a second row.
type Vote struct {
	MessageID string `gorm:"primaryKey" json:"message_id"`
	VoterID   string `gorm:"primaryKey" json:"voter_id"`
	Value     int    `gorm:"not null" json:"value"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli" json:"updated_at"`
}
