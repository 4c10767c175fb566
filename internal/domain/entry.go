package domain

// DirEntry 描述一次扫描得到的直接子目录（只做 stat，不读内容）。
//
// 不变量（实现必须遵守）：
// - AbsPath 必须是 clean + absolute
// - ModUnix 是文件系统报告的修改时间（秒）
// - 仅在 stat 的瞬间保证该路径是目录（目录，或指向目录的符号链接）；之后不做任何保证（无锁）
type DirEntry struct {
	AbsPath string
	Base    string // 最后一段路径名（不含父目录前缀）
	ModUnix int64
}
