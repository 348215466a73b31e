package game

import (
	"os"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

var scoreBaseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func scoreAt(name string, seconds int, difficulty string, offset int) HighScoreEntry {
	return HighScoreEntry{
		Name:       name,
		Seconds:    seconds,
		Difficulty: difficulty,
		RecordedAt: scoreBaseTime.Add(time.Duration(offset) * time.Minute),
	}
}

// openTestGdata 在临时 HOME 下打开 gdata，平台不支持时跳过测试
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata storage unavailable: %v", err)
	}
	return gdataManager
}

// TestScoreSubmitOrdering 测试记录按用时排序并返回名次
func TestScoreSubmitOrdering(t *testing.T) {
	sm := NewScoreManager(nil, 10)

	tests := []struct {
		entry        HighScoreEntry
		expectedRank int
	}{
		{scoreAt("alice", 120, "beginner", 0), 1},
		{scoreAt("bob", 90, "beginner", 1), 1},
		{scoreAt("carol", 150, "expert", 2), 3},
		{scoreAt("dave", 100, "expert", 3), 2},
	}

	for _, tt := range tests {
		if rank := sm.Submit(tt.entry); rank != tt.expectedRank {
			t.Errorf("Submit(%s) rank = %d, expected %d", tt.entry.Name, rank, tt.expectedRank)
		}
	}

	expectedOrder := []string{"bob", "dave", "alice", "carol"}
	entries := sm.Entries()
	if len(entries) != len(expectedOrder) {
		t.Fatalf("expected %d entries, got %d", len(expectedOrder), len(entries))
	}
	for i, name := range expectedOrder {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %s, expected %s", i, entries[i].Name, name)
		}
	}
}

// TestScoreTieBreak 测试用时相同时先记录者在前
func TestScoreTieBreak(t *testing.T) {
	sm := NewScoreManager(nil, 10)

	sm.Submit(scoreAt("late", 60, "beginner", 10))
	if rank := sm.Submit(scoreAt("early", 60, "beginner", 5)); rank != 1 {
		t.Errorf("earlier record rank = %d, expected 1", rank)
	}
	if rank := sm.Submit(scoreAt("latest", 60, "beginner", 20)); rank != 3 {
		t.Errorf("latest record rank = %d, expected 3", rank)
	}
}

// TestScoreTruncation 测试超过上限的记录被截断
func TestScoreTruncation(t *testing.T) {
	sm := NewScoreManager(nil, 3)

	for i, seconds := range []int{30, 40, 50} {
		sm.Submit(scoreAt("p", seconds, "beginner", i))
	}

	if rank := sm.Submit(scoreAt("slow", 60, "beginner", 10)); rank != 0 {
		t.Errorf("slow record rank = %d, expected 0 (not placed)", rank)
	}
	if rank := sm.Submit(scoreAt("fast", 10, "beginner", 11)); rank != 1 {
		t.Errorf("fast record rank = %d, expected 1", rank)
	}

	entries := sm.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[2].Seconds != 40 {
		t.Errorf("last entry seconds = %d, expected 40", entries[2].Seconds)
	}
}

// TestScoreDefaults 测试默认上限与自动记录时间
func TestScoreDefaults(t *testing.T) {
	sm := NewScoreManager(nil, 0)
	if sm.MaxEntries() != 10 {
		t.Errorf("MaxEntries() = %d, expected 10", sm.MaxEntries())
	}

	sm.Submit(HighScoreEntry{Name: "now", Seconds: 5})
	if sm.Entries()[0].RecordedAt.IsZero() {
		t.Error("RecordedAt should be filled in on submit")
	}
}

// TestScoreEntriesIsCopy 测试 Entries 返回副本
func TestScoreEntriesIsCopy(t *testing.T) {
	sm := NewScoreManager(nil, 10)
	sm.Submit(scoreAt("alice", 100, "beginner", 0))

	entries := sm.Entries()
	entries[0].Name = "mallory"

	if got := sm.Entries()[0].Name; got != "alice" {
		t.Errorf("internal entry modified through copy: %s", got)
	}
}

// TestScoreBest 测试按难度查询最佳记录
func TestScoreBest(t *testing.T) {
	sm := NewScoreManager(nil, 10)

	if _, ok := sm.Best(""); ok {
		t.Error("Best on empty table should report false")
	}

	sm.Submit(scoreAt("alice", 120, "beginner", 0))
	sm.Submit(scoreAt("bob", 300, "expert", 1))
	sm.Submit(scoreAt("carol", 90, "beginner", 2))

	tests := []struct {
		difficulty string
		expected   string
		found      bool
	}{
		{"", "carol", true},
		{"beginner", "carol", true},
		{"expert", "bob", true},
		{"intermediate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			best, ok := sm.Best(tt.difficulty)
			if ok != tt.found {
				t.Fatalf("Best(%q) found = %v, expected %v", tt.difficulty, ok, tt.found)
			}
			if best.Name != tt.expected {
				t.Errorf("Best(%q) = %s, expected %s", tt.difficulty, best.Name, tt.expected)
			}
		})
	}
}

// TestScoreReset 测试清空
func TestScoreReset(t *testing.T) {
	sm := NewScoreManager(nil, 10)
	sm.Submit(scoreAt("alice", 100, "beginner", 0))
	sm.Reset()

	if len(sm.Entries()) != 0 {
		t.Errorf("expected empty table after Reset, got %d entries", len(sm.Entries()))
	}
}

// TestScoreNilGdata 测试降级模式：保存不报错，加载得到空榜
func TestScoreNilGdata(t *testing.T) {
	sm := NewScoreManager(nil, 10)
	sm.Submit(scoreAt("alice", 100, "beginner", 0))

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode error: %v", err)
	}
	if len(sm.Entries()) != 0 {
		t.Error("degraded mode Load should leave an empty table")
	}
}

// TestScoreLoadSave 测试持久化往返
func TestScoreLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_scores_load_save")

	sm1 := NewScoreManager(gdataManager, 5)
	sm1.Submit(scoreAt("alice", 120, "beginner", 0))
	sm1.Submit(scoreAt("bob", 90, "expert", 1))
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewScoreManager(gdataManager, 5)
	entries := sm2.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 loaded entries, got %d", len(entries))
	}
	if entries[0].Name != "bob" || entries[1].Name != "alice" {
		t.Errorf("loaded order = [%s %s], expected [bob alice]", entries[0].Name, entries[1].Name)
	}
	if !entries[0].RecordedAt.Equal(scoreBaseTime.Add(time.Minute)) {
		t.Errorf("RecordedAt = %v, expected %v", entries[0].RecordedAt, scoreBaseTime.Add(time.Minute))
	}

	// 较小的上限在加载时截断
	sm3 := NewScoreManager(gdataManager, 1)
	if len(sm3.Entries()) != 1 {
		t.Errorf("expected truncation to 1 entry, got %d", len(sm3.Entries()))
	}
}

// TestScoreLoadCorrupted 测试损坏数据
func TestScoreLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_scores_corrupted")

	if err := gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("entries: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewScoreManager(gdataManager, 10)
	if len(sm.Entries()) != 0 {
		t.Error("corrupted data should leave an empty table")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted data")
	}
}
