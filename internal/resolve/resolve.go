package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ErrCodePathInvalid 表示输入路径无法解析（不存在、中间组件损坏、或无权限遍历）。
	ErrCodePathInvalid = "path_invalid"
	// ErrCodeNotDir 表示路径解析成功但目标不是目录。
	ErrCodeNotDir = "not_a_directory"
)

// Error 是路径解析阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodePathInvalid:
		if e.Err != nil {
			return fmt.Sprintf("路径无效或不存在：%q：%v", e.Path, e.Err)
		}
		return fmt.Sprintf("路径无效或不存在：%q", e.Path)
	case ErrCodeNotDir:
		return fmt.Sprintf("路径存在但不是目录：%q", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Dir 把用户输入解析为规范的绝对目录路径。
//
// 规则（固定）：
// 1) raw 为空串：视为未提供参数，默认当前工作目录
// 2) 解析 = Abs + EvalSymlinks（跟随符号链接，规范化 . 与 ..）
// 3) 解析结果必须是目录
//
// raw 不做任何修剪：空格是合法的路径名字符（"x " 与 " " 都是真实目录名），
// 修剪会让解析落到另一个路径上。
//
// 失败不重试：这些都是用户输入错误，重试不会改变结果。
// path_invalid 的错误信息带原始输入路径（便于用户定位拼写问题）；
// not_a_directory 带解析后的路径。
func Dir(raw string) (string, error) {
	p := raw
	if p == "" {
		p = "."
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &Error{Code: ErrCodePathInvalid, Path: p, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &Error{Code: ErrCodePathInvalid, Path: p, Err: err}
	}

	fi, err := os.Stat(resolved)
	if err != nil {
		// EvalSymlinks 成功后 Stat 仍可能失败（条目在两次调用之间被删除）。
		return "", &Error{Code: ErrCodePathInvalid, Path: p, Err: err}
	}
	if !fi.IsDir() {
		return "", &Error{Code: ErrCodeNotDir, Path: resolved}
	}

	return filepath.Clean(resolved), nil
}
