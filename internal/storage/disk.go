package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidPath 在路径试图越出磁盘根目录时返回
var ErrInvalidPath = errors.New("storage: path escapes disk root")

// Disk 是一个以目录为根的公共文件存储区。
// 所有方法接受/返回相对于根目录的 slash 分隔路径，例如 projects/xxx.png。
type Disk struct {
	root string
}

// NewDisk 构造指向 root 目录的存储区
func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Root 返回磁盘根目录
func (d *Disk) Root() string {
	return d.root
}

// Save 把 src 的内容写入指定目录，文件名使用日期加 UUID，保留原扩展名。
// 返回保存后的相对路径。
func (d *Disk) Save(collection, originalName string, src io.Reader) (string, error) {
	dir := filepath.Join(d.root, collection)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("create storage file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write storage file: %w", err)
	}

	return path.Join(collection, filename), nil
}

// SaveUpload 保存一个 multipart 上传文件
func (d *Disk) SaveUpload(collection string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	return d.Save(collection, file.Filename, src)
}

// Delete 删除相对路径指向的文件。文件不存在视为成功，保证重复删除无害。
func (d *Disk) Delete(relPath string) error {
	full, err := d.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists 判断相对路径指向的文件是否存在
func (d *Disk) Exists(relPath string) bool {
	full, err := d.resolve(relPath)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// List 返回指定目录下所有文件的相对路径。目录不存在时返回空列表。
func (d *Disk) List(collection string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(d.root, collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, path.Join(collection, entry.Name()))
	}
	return files, nil
}

func (d *Disk) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", ErrInvalidPath
	}
	return filepath.Join(d.root, cleaned), nil
}
