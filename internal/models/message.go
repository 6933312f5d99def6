package models

import "time"

// Message is a note from a prospective guest to a listing's host. The
// recipient is always derived from the listing, never client-supplied.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Text        string    `gorm:"size:160;not null" json:"text"`
	Timestamp   time.Time `gorm:"not null;autoCreateTime" json:"timestamp"`
	SenderID    uint      `gorm:"not null" json:"sender_id"`
	RecipientID uint      `gorm:"not null" json:"recipient_id"`

	Sender    *User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Recipient *User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}
