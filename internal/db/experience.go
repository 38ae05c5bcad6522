package db

import "time"

// Experience 定义工作经历模型
type Experience struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Company      string     `gorm:"size:255;not null" json:"company"`
	Role         string     `gorm:"size:255;not null" json:"role"`
	Period       string     `gorm:"size:255;not null" json:"period"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Technologies StringList `gorm:"type:text" json:"technologies"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
