package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveManager 植物存档管理器
//
// 职责：
//   - 启动时读取植物存档
//   - 返回菜单或退出游戏时写入存档
//
// 存档格式为 YAML 映射（键：age, water, growth_progress, last_watered, happiness）。
// YAML 是 JSON 的超集，旧版 JSON 存档可直接读取。
type SaveManager struct {
	savePath string // 存档文件路径
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - savePath: 存档文件路径（如 "data/savegame.yaml"）
func NewSaveManager(savePath string) *SaveManager {
	return &SaveManager{savePath: savePath}
}

// GetSavePath 返回存档文件路径
func (sm *SaveManager) GetSavePath() string {
	return sm.savePath
}

// HasSave 检查存档文件是否存在
func (sm *SaveManager) HasSave() bool {
	_, err := os.Stat(sm.savePath)
	return err == nil
}

// ReadRecord 读取存档原始键值记录
//
// 返回：
//   - map[string]any: 存档记录
//   - error: 文件不存在时返回 os.ErrNotExist；内容不是映射或解析失败时返回解析错误
func (sm *SaveManager) ReadRecord() (map[string]any, error) {
	data, err := os.ReadFile(sm.savePath)
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse save data: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("save file %s is empty", sm.savePath)
	}

	return record, nil
}

// Load 读取植物状态
//
// 任何读取失败（文件缺失、内容损坏）都回退到默认状态，不向调用方暴露错误。
// 缺失的键逐个回退为默认值。
func (sm *SaveManager) Load() *PlantState {
	state := NewPlantState()

	record, err := sm.ReadRecord()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[SaveManager] 未找到存档 %s，使用默认状态", sm.savePath)
		} else {
			log.Printf("[SaveManager] Warning: 读取存档失败: %v (using defaults)", err)
		}
		return state
	}

	if err := state.Restore(record); err != nil {
		log.Printf("[SaveManager] Warning: 存档内容无效: %v (using defaults)", err)
		return state
	}

	log.Printf("[SaveManager] 存档加载成功: age=%d water=%d happiness=%d", state.Age, state.Water, state.Happiness)
	return state
}

// Save 写入植物状态
//
// 会自动创建存档目录。
func (sm *SaveManager) Save(state *PlantState) error {
	if state == nil {
		return fmt.Errorf("nil plant state")
	}

	if dir := filepath.Dir(sm.savePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create save directory: %w", err)
		}
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}

	if err := os.WriteFile(sm.savePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	log.Printf("[SaveManager] 存档已保存: %s", sm.savePath)
	return nil
}

// Delete 删除存档文件，文件不存在不视为错误
func (sm *SaveManager) Delete() error {
	if err := os.Remove(sm.savePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}
