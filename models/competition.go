package models

type Competition struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:300" json:"description"`
	Img         string `gorm:"size:300" json:"img"`
	RecentQuota int    `json:"recent_quota"`
	Fee         int64  `json:"fee"`
}
