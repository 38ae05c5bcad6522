package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProjectService handles project CRUD and keeps the image store in sync
// with the image_url column.
type ProjectService struct {
	db   *gorm.DB
	disk *storage.Disk
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB, disk *storage.Disk) *ProjectService {
	return &ProjectService{db: gdb, disk: disk}
}

// ProjectInput represents fields accepted when creating or updating a project.
// 指针字段为 nil 表示请求中未携带该字段：更新时保持原值不动；
// 指针非 nil 但内容为空串表示明确要求清空该字段。
type ProjectInput struct {
	Title       string
	Description string
	TechStack   any
	Image       *multipart.FileHeader
	ImageURL    *string
	DemoLink    *string
	RepoLink    *string
	// BaseURL 是请求自身的 scheme+host，用于把上传文件的地址补全成完整 URL
	BaseURL string
}

// List returns all projects, newest first.
func (s *ProjectService) List() ([]db.Project, error) {
	var items []db.Project
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Get fetches a project by id.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &item, nil
}

// Create inserts a new project. An uploaded image file takes precedence over
// a plain image_url string; with neither, image_url stays null.
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	techStack, err := validateProjectInput(input)
	if err != nil {
		return nil, err
	}

	item := db.Project{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		TechStack:   techStack,
		DemoLink:    normalizeOptionalText(input.DemoLink),
		RepoLink:    normalizeOptionalText(input.RepoLink),
	}

	if input.Image != nil {
		imageURL, width, height, err := s.storeImage(input.Image, input.BaseURL)
		if err != nil {
			return nil, err
		}
		item.ImageURL = &imageURL
		item.ImageWidth = width
		item.ImageHeight = height
	} else if url := normalizeOptionalText(input.ImageURL); url != nil {
		item.ImageURL = url
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &item, nil
}

// Update modifies an existing project and reconciles its image file.
//
// Image rules, in order:
//   - new upload: remove the old local file, store the new one;
//   - image_url present and empty: remove the old local file, clear the field;
//   - image_url present and different: remove the old local file, adopt the
//     new string verbatim (it may be local or external, no check here);
//   - image_url absent: leave file and field untouched.
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	techStack, err := validateProjectInput(input)
	if err != nil {
		return nil, err
	}

	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.TechStack = techStack

	if input.DemoLink != nil {
		item.DemoLink = normalizeOptionalText(input.DemoLink)
	}
	if input.RepoLink != nil {
		item.RepoLink = normalizeOptionalText(input.RepoLink)
	}

	switch {
	case input.Image != nil:
		s.removeLocalImage(item.ImageURL)
		imageURL, width, height, err := s.storeImage(input.Image, input.BaseURL)
		if err != nil {
			return nil, err
		}
		item.ImageURL = &imageURL
		item.ImageWidth = width
		item.ImageHeight = height
	case input.ImageURL != nil:
		trimmed := strings.TrimSpace(*input.ImageURL)
		switch {
		case trimmed == "":
			s.removeLocalImage(item.ImageURL)
			item.ImageURL = nil
			item.ImageWidth = 0
			item.ImageHeight = 0
		case item.ImageURL == nil || trimmed != *item.ImageURL:
			s.removeLocalImage(item.ImageURL)
			item.ImageURL = &trimmed
			item.ImageWidth = 0
			item.ImageHeight = 0
		}
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &item, nil
}

// Delete removes a project and its local image file. Removing the record is
// the priority; a failed file delete is logged and swallowed.
func (s *ProjectService) Delete(id uint) error {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("find project: %w", err)
	}

	s.removeLocalImage(item.ImageURL)

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// OrphanImages returns files under projects/ that no live project references.
// 只按文件名比较，受管理目录是平的，不会出现同名不同目录的情况。
func (s *ProjectService) OrphanImages() ([]string, error) {
	var projects []db.Project
	if err := s.db.Where("image_url IS NOT NULL").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list referenced images: %w", err)
	}

	referenced := make(map[string]struct{}, len(projects))
	for _, project := range projects {
		if project.ImageURL == nil {
			continue
		}
		if resolved, ok := storage.ResolveStoragePath(*project.ImageURL); ok {
			referenced[path.Base(resolved)] = struct{}{}
		}
	}

	files, err := s.disk.List(storage.CollectionProjects)
	if err != nil {
		return nil, fmt.Errorf("list stored images: %w", err)
	}

	var orphans []string
	for _, file := range files {
		if _, ok := referenced[path.Base(file)]; !ok {
			orphans = append(orphans, file)
		}
	}
	return orphans, nil
}

// RemoveImage deletes a stored image file by its disk-relative path.
func (s *ProjectService) RemoveImage(relPath string) error {
	return s.disk.Delete(relPath)
}

func (s *ProjectService) storeImage(file *multipart.FileHeader, baseURL string) (string, int, int, error) {
	relPath, err := s.disk.SaveUpload(storage.CollectionProjects, file)
	if err != nil {
		return "", 0, 0, fmt.Errorf("store project image: %w", err)
	}

	width, height := 0, 0
	if src, err := file.Open(); err == nil {
		width, height = storage.ProbeImageSize(src)
		src.Close()
	}

	return qualifyPublicURL(baseURL, relPath), width, height, nil
}

// removeLocalImage 尽力删除旧图片：外部链接和无法解析的路径一律跳过，
// 删除失败只记日志，不影响主流程。
func (s *ProjectService) removeLocalImage(imageURL *string) {
	if imageURL == nil {
		return
	}

	relPath, ok := storage.ResolveStoragePath(*imageURL)
	if !ok {
		return
	}

	if err := s.disk.Delete(relPath); err != nil {
		log.Warn().Err(err).Str("path", relPath).Msg("failed to remove project image")
	}
}

func validateProjectInput(input ProjectInput) (db.StringList, error) {
	var b validationBuilder
	if strings.TrimSpace(input.Title) == "" {
		b.add("title", "The title field is required.")
	}
	if strings.TrimSpace(input.Description) == "" {
		b.add("description", "The description field is required.")
	}

	techStack := NormalizeStringList(input.TechStack)
	if len(techStack) == 0 {
		b.add("tech_stack", "The tech stack must contain at least one technology.")
	}

	if err := b.err(); err != nil {
		return nil, err
	}
	return db.StringList(techStack), nil
}

func normalizeOptionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func qualifyPublicURL(baseURL, relPath string) string {
	publicPath := storage.PublicPath(relPath)
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return publicPath
	}
	return base + "/" + publicPath
}
