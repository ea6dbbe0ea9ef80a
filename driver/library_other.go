//go:build !(windows && amd64)

package driver

import (
	"go.uber.org/zap"

	"github.com/LoveWonYoung/nixnet/status"
)

// DefaultLibrary 是 NI-XNET 安装的驱动 DLL
const DefaultLibrary = "nixnet.dll"

// Open 在非 64 位 Windows 平台上总是失败
// 其他平台请使用 MockNative
func Open(path string) (Native, error) {
	Logger().Debug("NI-XNET library requested on unsupported platform", zap.String("path", path))
	return nil, status.ErrUnsupportedPlatform
}
