package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/John-Robertt/lsmt/internal/render"
	"github.com/John-Robertt/lsmt/internal/resolve"
	"github.com/John-Robertt/lsmt/internal/scan"
)

func main() {
	args := os.Args[1:]
	for _, a := range args {
		if isHelp(a) {
			printUsage()
			return
		}
	}

	la, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stdout, "参数错误：%v\n\n", err)
		printUsage()
		os.Exit(2)
	}

	if code := listCmd(la); code != 0 {
		os.Exit(code)
	}
}

type listArgs struct {
	Path string
}

func parseArgs(args []string) (listArgs, error) {
	la := listArgs{}

	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "-"):
			return listArgs{}, fmt.Errorf("未知参数 %q", a)
		default:
			if la.Path != "" {
				return listArgs{}, fmt.Errorf("重复的 path：%q 与 %q", la.Path, a)
			}
			la.Path = a
		}
	}

	return la, nil
}

// listCmd 执行一次列目录流程：resolve -> scan -> sort -> print。
//
// 对外契约：
// - 所有输出（包括诊断信息）都走 stdout；stderr 不使用
// - 退出码：0 成功（含无子目录）；1 路径解析/校验失败
func listCmd(la listArgs) int {
	dir, err := resolve.Dir(la.Path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\n", err)
		return 1
	}

	entries, err := scan.Subdirs(dir)
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\n", err)
		return 1
	}

	scan.SortOldestFirst(entries)
	render.Print(os.Stdout, dir, entries)
	return 0
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage() {
	fmt.Fprint(os.Stdout, `用法：
  lsmt [directory]

列出 directory（默认当前工作目录）下的直接子目录，按修改时间升序输出
（最旧的在前），每行一个目录名。

参数：
  directory   要列出的目录；未指定时使用当前工作目录
  -h, --help  显示帮助

退出码：
  0  成功（包括没有任何子目录的情况）
  1  路径无法解析，或目标不是目录
`)
}
