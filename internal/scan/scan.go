package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/John-Robertt/lsmt/internal/domain"
)

// Subdirs 枚举 dir 下的直接子目录（不递归），按枚举顺序返回。
//
// 规则（硬约束）：
// - 只做 stat，不读内容；stat 跟随符号链接（指向目录的符号链接计入）
// - 非目录条目静默跳过
// - 单个条目 stat 失败：跳过该条目继续（best-effort；常见原因是列目录与 stat 之间条目被删除的竞态）
// - 打开目录失败：整体失败，由上层报告并终止
func Subdirs(dir string) ([]domain.DirEntry, error) {
	dir = filepath.Clean(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录 %q 失败：%w", dir, err)
	}

	out := make([]domain.DirEntry, 0, len(entries))
	for _, e := range entries {
		abs := filepath.Join(dir, e.Name())

		fi, err := os.Stat(abs)
		if err != nil {
			continue
		}
		if !fi.IsDir() {
			continue
		}

		out = append(out, domain.DirEntry{
			AbsPath: abs,
			Base:    e.Name(),
			ModUnix: fi.ModTime().Unix(),
		})
	}
	return out, nil
}

// SortOldestFirst 按修改时间升序做稳定排序（最旧的在前）。
// 时间戳相同的条目保持枚举顺序；相同时间戳是合法输入，不是错误。
func SortOldestFirst(entries []domain.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModUnix < entries[j].ModUnix
	})
}
