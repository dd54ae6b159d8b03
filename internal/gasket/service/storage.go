package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage раскладывает чертежи по каталогам <root>/<дата>/<id>/.
type FileStorage struct {
	root string
	now  func() time.Time
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root, now: time.Now}
}

func (s *FileStorage) Root() string {
	return s.root
}

func (s *FileStorage) DrawingDir(id string) string {
	return filepath.Join(s.root, s.now().UTC().Format("2006-01-02"), id)
}

// DrawingPath возвращает путь к файлу чертежа. Имя файла очищается от
// разделителей каталогов.
func (s *FileStorage) DrawingPath(id, fileName string) string {
	return filepath.Join(s.DrawingDir(id), sanitize(fileName))
}

func (s *FileStorage) EnsureDir(id string) error {
	path := s.DrawingDir(id)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir drawing dir: %w", err)
	}
	return nil
}

// Contains проверяет, что path лежит внутри корня хранилища.
func (s *FileStorage) Contains(path string) bool {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func sanitize(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "drawing.dxf"
	}
	return name
}
