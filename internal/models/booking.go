package models

// Booking reserves a listing for a user. Rows go away with either side of
// the relation.
type Booking struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ListingID     uint `gorm:"not null" json:"listing_id"`
	BookingUserID uint `gorm:"not null" json:"booking_user_id"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:BookingUserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}
