package db

import "time"

// ProfileID 是 Profile 单例行使用的固定主键
const ProfileID uint = 1

// Profile 定义站点主人信息，全库最多只有一行（id 固定为 1）
type Profile struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Headline    string    `gorm:"size:255;not null" json:"headline"`
	SubHeadline *string   `gorm:"size:255" json:"sub_headline"`
	ShortBio    *string   `gorm:"type:text" json:"short_bio"`
	AvatarURL   *string   `gorm:"size:255" json:"avatar_url"`
	ResumeURL   *string   `gorm:"size:255" json:"resume_url"`
	Linkedin    *string   `gorm:"size:255" json:"linkedin"`
	Github      *string   `gorm:"size:255" json:"github"`
	StatusText  string    `gorm:"size:255;default:System Online" json:"status_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
