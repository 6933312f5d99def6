package models

// Photo is an uploaded image attached to a listing. URL points at the
// public object-storage location.
type Photo struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	URL       string `gorm:"not null" json:"url"`
	ListingID uint   `gorm:"not null" json:"listing_id"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Photo) TableName() string {
	return "photos"
}
