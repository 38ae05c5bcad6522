package db

import "time"

// Skill 定义技能模型，proficiency 为 0-100 的熟练度，可为空
type Skill struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Category    string    `gorm:"size:255;not null" json:"category"`
	Proficiency *int      `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
