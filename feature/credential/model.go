package credential

import "time"

// AuthApp is one issued bearer credential. Rows are append-only history:
// every refresh inserts a new row and the row with the maximum expiry is the
// active one.
type AuthApp struct {
	ID           uint      `gorm:"primaryKey;column:id"`
	Token        []byte    `gorm:"column:token"`
	Expire       time.Time `gorm:"column:expire"`
	RefreshToken string    `gorm:"column:refresh_token"`
}

// TableName maps the model onto the shared auth_app table.
func (AuthApp) TableName() string { return "auth_app" }
