package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultStatusText 是 status_text 字段缺省时的取值
const DefaultStatusText = "System Online"

// ProfileService 维护站点主人信息单例以及头像/简历文件。
// Profile 表最多只有一行，主键固定为 db.ProfileID。
type ProfileService struct {
	db   *gorm.DB
	disk *storage.Disk
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB, disk *storage.Disk) *ProfileService {
	return &ProfileService{db: gdb, disk: disk}
}

// ProfileInput 描述更新单例时可设置的字段。
// DeleteAvatar/DeleteResume 为显式清除指令，优先级高于同名上传文件。
type ProfileInput struct {
	Name         string
	Headline     string
	SubHeadline  *string
	ShortBio     *string
	Linkedin     *string
	Github       *string
	StatusText   *string
	Avatar       *multipart.FileHeader
	Resume       *multipart.FileHeader
	DeleteAvatar bool
	DeleteResume bool
}

// Get returns the singleton profile row.
func (s *ProfileService) Get() (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.First(&profile, db.ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile row if absent, otherwise updates it in place.
// 整个读-改-写序列包在一个事务里，避免并发管理端之间的丢失更新。
func (s *ProfileService) Upsert(input ProfileInput) (*db.Profile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	var profile db.Profile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created := false
		if err := tx.First(&profile, db.ProfileID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("find profile: %w", err)
			}
			profile = db.Profile{ID: db.ProfileID}
			created = true
		}

		profile.Name = strings.TrimSpace(input.Name)
		profile.Headline = strings.TrimSpace(input.Headline)
		profile.SubHeadline = normalizeOptionalText(input.SubHeadline)
		profile.ShortBio = normalizeOptionalText(input.ShortBio)
		profile.Linkedin = normalizeOptionalText(input.Linkedin)
		profile.Github = normalizeOptionalText(input.Github)

		profile.StatusText = DefaultStatusText
		if status := normalizeOptionalText(input.StatusText); status != nil {
			profile.StatusText = *status
		}

		if err := s.reconcileAsset(&profile.AvatarURL, input.DeleteAvatar, input.Avatar); err != nil {
			return err
		}
		if err := s.reconcileAsset(&profile.ResumeURL, input.DeleteResume, input.Resume); err != nil {
			return err
		}

		if created {
			return tx.Create(&profile).Error
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// reconcileAsset 对单个文件字段执行清除/替换/保持三种动作之一。
// 清除指令优先于上传；二者都没有时字段保持原样。
func (s *ProfileService) reconcileAsset(urlField **string, deleteFlag bool, file *multipart.FileHeader) error {
	if deleteFlag {
		s.removeLocalFile(*urlField)
		*urlField = nil
		return nil
	}

	if file == nil {
		return nil
	}

	s.removeLocalFile(*urlField)
	relPath, err := s.disk.SaveUpload(storage.CollectionProfile, file)
	if err != nil {
		return fmt.Errorf("store profile asset: %w", err)
	}

	publicPath := storage.PublicPath(relPath)
	*urlField = &publicPath
	return nil
}

func (s *ProfileService) removeLocalFile(urlValue *string) {
	if urlValue == nil {
		return
	}

	relPath, ok := storage.ResolveStoragePath(*urlValue)
	if !ok {
		return
	}

	if err := s.disk.Delete(relPath); err != nil {
		log.Warn().Err(err).Str("path", relPath).Msg("failed to remove profile asset")
	}
}

func validateProfileInput(input ProfileInput) error {
	var b validationBuilder
	if strings.TrimSpace(input.Name) == "" {
		b.add("name", "The name field is required.")
	}
	if strings.TrimSpace(input.Headline) == "" {
		b.add("headline", "The headline field is required.")
	}
	return b.err()
}
