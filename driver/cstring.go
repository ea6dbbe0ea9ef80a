package driver

import (
	"bytes"
	"fmt"

	"github.com/LoveWonYoung/nixnet/status"
)

// ASCII 检查字符串能否传给驱动（仅限 ASCII，且不含 NUL）
func ASCII(strs ...string) error {
	for _, s := range strs {
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 || s[i] == 0 {
				return fmt.Errorf("%q at byte %d: %w", s, i, status.ErrNonASCII)
			}
		}
	}
	return nil
}

// CString 返回以 NUL 结尾的 ASCII 字节切片
func CString(s string) ([]byte, error) {
	if err := ASCII(s); err != nil {
		return nil, err
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, nil
}

// GoString 解码驱动返回的文本缓冲区
// 文本在第一个 NUL 处结束；没有 NUL 时取整个缓冲区。
// 含非 ASCII 字节时返回 status.ErrNonASCII
func GoString(buf []byte) (string, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	for i, b := range buf {
		if b >= 0x80 {
			return "", fmt.Errorf("driver text byte 0x%02X at %d: %w", b, i, status.ErrNonASCII)
		}
	}
	return string(buf), nil
}
