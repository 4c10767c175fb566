package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/John-Robertt/lsmt/internal/domain"
)

// Print 按给定顺序输出目录名：每行一个，单引号包裹，粗体蓝色。
// 目录名原样输出（空格/特殊字符不转义）。
// entries 为空时输出一条提示（带解析后的目录路径），不输出空列表。
func Print(w io.Writer, dir string, entries []domain.DirEntry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "未找到子目录：%s\n", dir)
		return
	}

	style := newStyle(w)
	for i := range entries {
		fmt.Fprintln(w, style.Render("'"+entries[i].Base+"'"))
	}
}

// newStyle 构造粗体蓝色样式。
// 强制 ANSI profile + TTY：即使 stdout 被重定向到文件，转义序列也照常输出。
func newStyle(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI), termenv.WithTTY(true))
	return r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
}
