package db

import "time"

// Project 定义作品集项目模型
// ImageURL 可能是本地上传文件的地址，也可能是外部图床链接
type Project struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	TechStack   StringList `gorm:"type:text" json:"tech_stack"`
	ImageURL    *string    `gorm:"size:255" json:"image_url"`
	ImageWidth  int        `gorm:"default:0" json:"image_width"`
	ImageHeight int        `gorm:"default:0" json:"image_height"`
	DemoLink    *string    `gorm:"size:255" json:"demo_link"`
	RepoLink    *string    `gorm:"size:255" json:"repo_link"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
