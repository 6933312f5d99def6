package models

// Listing is a bookable property owned by a host user. Deleting the host
// cascades to the listing; deleting the listing cascades to its photos and
// bookings.
type Listing struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:50;not null" json:"name"`
	Price   float64 `gorm:"type:numeric(6,2);not null" json:"price"`
	Details string  `gorm:"size:300;not null" json:"details"`
	UserID  uint    `gorm:"not null" json:"user_id"`

	Host     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Photos   []Photo   `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"photos"`
	Bookings []Booking `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"booked_listings"`
}

func (Listing) TableName() string {
	return "listings"
}
