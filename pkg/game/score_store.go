package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata/v2"
)

// ScoreStore 加密后分数表的持久化后端
//
// Load 在数据不存在时返回 (nil, nil)。
type ScoreStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileScoreStore 将分数表保存为单个文件
type FileScoreStore struct {
	Path string
}

// NewFileScoreStore 创建文件存储
func NewFileScoreStore(path string) *FileScoreStore {
	return &FileScoreStore{Path: path}
}

// Load 读取文件，文件不存在时返回 nil
func (s *FileScoreStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score file %s: %w", s.Path, err)
	}
	return data, nil
}

// Save 写入文件，必要时创建所在目录
func (s *FileScoreStore) Save(data []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create score directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write score file %s: %w", s.Path, err)
	}
	return nil
}

// gdata 存储路径常量
const (
	scoresObject   = "scores"
	scoresProperty = "table"
)

// GdataScoreStore 通过 gdata 保存分数表（跨平台用户数据目录）
type GdataScoreStore struct {
	manager *gdata.Manager
}

// NewGdataScoreStore 创建 gdata 存储
//
// 参数：
//   - manager: gdata 管理器，不能为 nil
func NewGdataScoreStore(manager *gdata.Manager) *GdataScoreStore {
	return &GdataScoreStore{manager: manager}
}

// Load 读取分数表，不存在时返回 nil
func (s *GdataScoreStore) Load() ([]byte, error) {
	if !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}
	return data, nil
}

// Save 保存分数表
func (s *GdataScoreStore) Save(data []byte) error {
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// MemoryScoreStore 仅保存在内存中（降级模式与测试）
type MemoryScoreStore struct {
	Data []byte
}

func (s *MemoryScoreStore) Load() ([]byte, error) {
	return s.Data, nil
}

func (s *MemoryScoreStore) Save(data []byte) error {
	s.Data = append([]byte(nil), data...)
	return nil
}
