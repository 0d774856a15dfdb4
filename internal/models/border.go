package models

import (
	"time"
)

// Border IDs referenced by the achievement catalog and the seed data
const (
	BorderBronzeWhisk  = "bronze_whisk"
	BorderSilverWhisk  = "silver_whisk"
	BorderGoldenWhisk  = "golden_whisk"
	BorderJadeLeaf     = "jade_leaf"
	BorderMerchantSeal = "merchant_seal"
	BorderSakuraBloom  = "sakura_bloom"
	BorderKyotoSunset  = "kyoto_sunset"
	BorderCeremonial   = "ceremonial"
)

// Border is a cosmetic profile frame. Purchasable borders carry a point
// price; achievement borders are only granted by the rewards engine.
type Border struct {
	ID          string    `gorm:"primaryKey;type:varchar(40)"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	PricePoints int64     `gorm:"not null;default:0"`
	Purchasable bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Border) TableName() string {
	return "borders"
}

// Unlock type constants
const (
	UnlockTypeAchievement = "achievement"
	UnlockTypePurchase    = "purchase"
	UnlockTypeAdmin       = "admin"
)

// BorderUnlock records that a user owns a border. At most one row exists per
// (user, border); duplicate unlock attempts are ignored at the data layer.
type BorderUnlock struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_border_unlock,unique"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BorderID   string    `gorm:"type:varchar(40);not null;index:idx_border_unlock,unique"`
	Border     Border    `gorm:"foreignKey:BorderID"`
	UnlockType string    `gorm:"type:varchar(20);not null"`
	PricePaid  *int64
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (BorderUnlock) TableName() string {
	return "border_unlocks"
}
