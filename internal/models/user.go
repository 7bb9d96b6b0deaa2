// Package models contains the domain models and shared error types.
package models

import "time"

// User represents a registered account. The password column stores only the
// bcrypt hash and is never serialized outward.
type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Username    string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	NamaLengkap string    `gorm:"size:100;not null" json:"nama_lengkap"`
	Jabatan     string    `gorm:"size:50;not null" json:"jabatan"`
	NimNip      string    `gorm:"size:30" json:"nim_nip"`
	NoHp        string    `gorm:"size:20;not null" json:"no_hp"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Laporan []Laporan `gorm:"foreignKey:UserID" json:"-"`
}

// UserResponse is the outward profile projection (no password hash).
type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	NamaLengkap string `json:"nama_lengkap"`
	Jabatan     string `json:"jabatan"`
	NimNip      string `json:"nim_nip"`
	NoHp        string `json:"no_hp"`
}

// ToResponse converts a User to its outward projection.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		NamaLengkap: u.NamaLengkap,
		Jabatan:     u.Jabatan,
		NimNip:      u.NimNip,
		NoHp:        u.NoHp,
	}
}
