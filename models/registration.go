package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type OfficialRole string

const (
	RoleCoach    OfficialRole = "coach"
	RoleGuru     OfficialRole = "guru_pendamping"
	RoleOfficial OfficialRole = "official"
)

type Registration struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CompetitionID uint          `gorm:"not null;index" json:"competition_id"`
	Competition   Competition   `gorm:"foreignKey:CompetitionID" json:"-"`
	TeamName      string        `gorm:"size:100" json:"team_name"`
	LeaderName    string        `gorm:"size:100" json:"leader_name"`
	School        string        `gorm:"size:100" json:"school"`
	Email         string        `gorm:"size:100" json:"email"`
	Whatsapp      string        `gorm:"size:30" json:"whatsapp"`
	OrderID       string        `gorm:"size:60;uniqueIndex;not null" json:"order_id"`
	PaymentStatus PaymentStatus `gorm:"size:20;default:'pending'" json:"payment_status"`
	SnapToken     string        `gorm:"size:120" json:"snap_token"`
	TotalFee      int64         `json:"total_fee"`
	TotalMembers  int           `json:"total_members"`
	CreatedAt     time.Time     `json:"created_at"`

	TeamMembers []TeamMember `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"team_members"`
	Officials   []Official   `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"officials"`
}

type TeamMember struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationID uint      `gorm:"not null;index" json:"registration_id"`
	Name           string    `gorm:"size:100" json:"name"`
	Phone          string    `gorm:"size:30" json:"phone"`
	PhotoURL       *string   `gorm:"size:300" json:"photo_url"`
	SuratURL       *string   `gorm:"size:300" json:"surat_url"`
	PaktaURL       *string   `gorm:"size:300" json:"pakta_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type Official struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	RegistrationID uint         `gorm:"not null;index" json:"registration_id"`
	Role           OfficialRole `gorm:"size:30" json:"role"`
	Name           string       `gorm:"size:100" json:"name"`
	Phone          string       `gorm:"size:30" json:"phone"`
	PhotoURL       *string      `gorm:"size:300" json:"photo_url"`
	CreatedAt      time.Time    `json:"created_at"`
}
