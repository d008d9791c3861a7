package user

import "time"

// User is a borrower. The API reads borrowers exclusively through their
// credits; the entity exists for the schema and the dataset loader.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Login            string    `gorm:"type:varchar(50);not null" json:"login"`
	RegistrationDate time.Time `gorm:"type:date;not null" json:"registration_date"`
}

func (User) TableName() string {
	return "users"
}
