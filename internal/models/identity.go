package models

// Identity is the anonymous per-browser user. The id doubles as the session
// token subject; the handle is a generated two-word display name.
type Identity struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Handle    string `gorm:"not null" json:"handle"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (Identity) TableName() string {
	return "identities"
}
