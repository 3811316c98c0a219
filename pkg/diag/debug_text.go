package diag

import "strings"

// DebugText 屏幕调试文本缓冲
// 只保留最近 maxLines 行，供渲染层每帧绘制
type DebugText struct {
	lines    []string
	maxLines int
}

// NewDebugText 创建调试文本缓冲，maxLines <= 0 时不限制行数
func NewDebugText(maxLines int) *DebugText {
	return &DebugText{maxLines: maxLines}
}

// AppendLine 实现 Sink
func (d *DebugText) AppendLine(line string) {
	d.lines = append(d.lines, line)
	if d.maxLines > 0 && len(d.lines) > d.maxLines {
		d.lines = d.lines[len(d.lines)-d.maxLines:]
	}
}

// Lines 返回当前保留的行
func (d *DebugText) Lines() []string {
	return d.lines
}

// String 以换行连接所有行
func (d *DebugText) String() string {
	return strings.Join(d.lines, "\n")
}
