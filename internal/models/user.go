package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string   `gorm:"not null" json:"first_name"`
	LastName     string   `gorm:"not null" json:"last_name"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Active       bool     `gorm:"default:true" json:"active"`
	IsBlocked    bool     `gorm:"default:false" json:"is_blocked"`

	// Опциональные поля профиля
	Title    string `json:"title,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`

	// Состояние сброса пароля. Код живет только между успешной отправкой
	// письма и сменой пароля, после чего все три поля очищаются.
	Otp         string     `json:"-"`
	OtpExpiry   *time.Time `json:"-"`
	OtpVerified bool       `gorm:"default:false" json:"-"`
}

// CanAuthenticate — заблокированный или деактивированный пользователь
// не может войти и не может зарегистрироваться повторно под тем же email.
func (u *User) CanAuthenticate() bool {
	return u.Active && !u.IsBlocked
}
