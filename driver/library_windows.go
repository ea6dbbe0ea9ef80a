//go:build windows && amd64

package driver

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/LoveWonYoung/nixnet/status"
)

// DefaultLibrary 是 NI-XNET 安装的驱动 DLL
const DefaultLibrary = "nixnet.dll"

var (
	loadMu sync.Mutex
	loaded *library
)

// library 是已加载的驱动库。每个进程只创建一次，永不卸载。
type library struct {
	dll *windows.LazyDLL

	resolveMu sync.Mutex
	procs     sync.Map // 函数名 -> 地址
}

// Open 在首次调用时加载驱动库并返回它。
// 之后的调用忽略 path，始终返回同一个库。
func Open(path string) (Native, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if loaded != nil {
		return loaded, nil
	}
	if path == "" {
		path = DefaultLibrary
	}

	var dll *windows.LazyDLL
	if path == DefaultLibrary {
		dll = windows.NewLazySystemDLL(path)
	} else {
		dll = windows.NewLazyDLL(path)
	}
	if err := dll.Load(); err != nil {
		Logger().Error("failed to load NI-XNET library", zap.String("path", path), zap.Error(err))
		return nil, &status.StatusError{
			Status: status.CodeLibraryNotLoaded,
			Kind:   status.KindLibrary,
			Msg:    err.Error(),
			Op:     "LoadLibrary",
		}
	}

	Logger().Debug("loaded NI-XNET library", zap.String("path", path))
	loaded = &library{dll: dll}
	return loaded, nil
}

// proc 解析一个入口点，每个入口点只解析一次。已解析的地址无锁读取。
func (l *library) proc(name string) (uintptr, status.Code) {
	if addr, ok := l.procs.Load(name); ok {
		return addr.(uintptr), status.Success
	}

	l.resolveMu.Lock()
	defer l.resolveMu.Unlock()

	if addr, ok := l.procs.Load(name); ok {
		return addr.(uintptr), status.Success
	}
	p := l.dll.NewProc(name)
	if err := p.Find(); err != nil {
		Logger().Error("NI-XNET entry point not found", zap.String("name", name), zap.Error(err))
		return 0, status.CodeEntryPointNotFound
	}
	l.procs.Store(name, p.Addr())
	return p.Addr(), status.Success
}
