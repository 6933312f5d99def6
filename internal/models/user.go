package models

// User is a registered account. A user hosts listings, books other users'
// listings and exchanges messages with hosts.
//
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:30;not null" json:"first_name"`
	LastName  string `gorm:"size:30;not null" json:"last_name"`
	Username  string `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"size:100;not null" json:"-"`

	Listings []Listing `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Bookings []Booking `gorm:"foreignKey:BookingUserID;constraint:OnDelete:CASCADE" json:"booked_listings"`

	SentMessages     []Message `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	ReceivedMessages []Message `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
