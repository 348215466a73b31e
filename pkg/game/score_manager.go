package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/decker502/minesweeper/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreEntry 一条高分记录
// 用时越短排名越靠前
type HighScoreEntry struct {
	Name       string    `yaml:"name"`
	Seconds    int       `yaml:"seconds"`    // 通关用时（秒）
	Difficulty string    `yaml:"difficulty"` // 难度名，如 "beginner"
	RecordedAt time.Time `yaml:"recordedAt"` // 记录时间，用时相同时先记录者在前
}

// highScoreTable 持久化格式
type highScoreTable struct {
	Entries []HighScoreEntry `yaml:"entries"`
}

// 存储路径常量
const (
	highScoreObject   = "highscores"
	highScoreProperty = "table"
)

// ScoreManager 高分榜管理器
// 负责高分记录的排序、截断、加载和保存
type ScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	maxEntries   int
	entries      []HighScoreEntry // 始终保持有序
}

// NewScoreManager 创建高分榜管理器并尝试加载已保存的记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//   - maxEntries: 保留的最大记录数，<= 0 时使用 config.DefaultMaxHighScores
func NewScoreManager(gdataManager *gdata.Manager, maxEntries int) *ScoreManager {
	if maxEntries <= 0 {
		maxEntries = config.DefaultMaxHighScores
	}

	sm := &ScoreManager{
		gdataManager: gdataManager,
		maxEntries:   maxEntries,
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用空榜
		log.Printf("[ScoreManager] Warning: Failed to load high scores: %v (starting empty)", err)
	}

	return sm
}

// Load 从 gdata 加载高分榜
//
// gdataManager 为 nil 或记录不存在时得到空榜
func (sm *ScoreManager) Load() error {
	sm.entries = nil

	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var table highScoreTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}

	sm.entries = table.Entries
	sm.sortAndTruncate()
	log.Printf("[ScoreManager] Loaded %d high score entries", len(sm.entries))
	return nil
}

// Save 保存高分榜到 gdata
//
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(highScoreTable{Entries: sm.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}

	log.Printf("[ScoreManager] High scores saved (%d entries)", len(sm.entries))
	return nil
}

// Submit 提交一条记录
//
// RecordedAt 为零值时使用当前时间。
// 返回记录在榜上的名次（从 1 开始）；未能进入前 maxEntries 名时返回 0。
// 注意：仅修改内存中的记录，需调用 Save() 方法持久化
func (sm *ScoreManager) Submit(entry HighScoreEntry) int {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	// 插入位置：第一个严格排在 entry 之后的记录
	pos := sort.Search(len(sm.entries), func(i int) bool {
		return entryLess(entry, sm.entries[i])
	})
	if pos >= sm.maxEntries {
		return 0
	}

	sm.entries = append(sm.entries, HighScoreEntry{})
	copy(sm.entries[pos+1:], sm.entries[pos:])
	sm.entries[pos] = entry
	if len(sm.entries) > sm.maxEntries {
		sm.entries = sm.entries[:sm.maxEntries]
	}

	log.Printf("[ScoreManager] %s placed #%d with %ds (%s)", entry.Name, pos+1, entry.Seconds, entry.Difficulty)
	return pos + 1
}

// Entries 返回高分榜副本，按名次排列
func (sm *ScoreManager) Entries() []HighScoreEntry {
	result := make([]HighScoreEntry, len(sm.entries))
	copy(result, sm.entries)
	return result
}

// Best 返回指定难度的最佳记录，difficulty 为空时返回全榜第一
func (sm *ScoreManager) Best(difficulty string) (HighScoreEntry, bool) {
	for _, entry := range sm.entries {
		if difficulty == "" || entry.Difficulty == difficulty {
			return entry, true
		}
	}
	return HighScoreEntry{}, false
}

// MaxEntries 返回保留的最大记录数
func (sm *ScoreManager) MaxEntries() int {
	return sm.maxEntries
}

// Reset 清空高分榜（内存中）
func (sm *ScoreManager) Reset() {
	sm.entries = nil
}

func (sm *ScoreManager) sortAndTruncate() {
	sort.SliceStable(sm.entries, func(i, j int) bool {
		return entryLess(sm.entries[i], sm.entries[j])
	})
	if len(sm.entries) > sm.maxEntries {
		sm.entries = sm.entries[:sm.maxEntries]
	}
}

// entryLess 用时短者在前，用时相同按记录时间先后
func entryLess(a, b HighScoreEntry) bool {
	if a.Seconds != b.Seconds {
		return a.Seconds < b.Seconds
	}
	return a.RecordedAt.Before(b.RecordedAt)
}
