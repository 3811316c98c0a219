// Package diag 提供诊断文本输出
//
// 上层逻辑通过注入的 Sink 追加诊断行，不依赖任何全局查找；
// Sink 缺失时只打印一次警告并静默降级。
package diag

import (
	"errors"
	"log"
	"sync"
)

// ErrMissingCollaborator 可选协作者（诊断输出、音源等）缺失
// 调用方应降级处理，不应向上传播
var ErrMissingCollaborator = errors.New("missing collaborator")

// Sink 只追加的诊断行输出
type Sink interface {
	AppendLine(line string)
}

var warnOnce sync.Once

// Append 向 sink 追加一行；sink 为 nil 时降级为一次性警告
func Append(sink Sink, line string) {
	if sink == nil {
		warnOnce.Do(func() {
			log.Printf("[diag] Warning: %v: no diagnostic sink attached", ErrMissingCollaborator)
		})
		return
	}
	sink.AppendLine(line)
}

// Tee 将诊断行同时写入多个 sink（忽略 nil）
type Tee []Sink

// AppendLine 实现 Sink
func (t Tee) AppendLine(line string) {
	for _, s := range t {
		if s != nil {
			s.AppendLine(line)
		}
	}
}
