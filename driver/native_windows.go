//go:build windows && amd64

package driver

import (
	"math"
	"syscall"
	"unsafe"

	"github.com/LoveWonYoung/nixnet/status"
)

// double 参数按位模式传递。运行时会把前四个参数同时放入 XMM0-XMM3，
// x64 调用约定正是从这里读取浮点参数。

var _ Native = (*library)(nil)

func bufPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func cstr(s string) ([]byte, status.Code) {
	b, err := CString(s)
	if err != nil {
		return nil, status.CodeNullPointer
	}
	return b, status.Success
}

func cbool(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

func ret(r uintptr) status.Code {
	return status.Code(int32(r))
}

func (l *library) StatusToString(code status.Code, buf []byte) {
	if len(buf) == 0 {
		return
	}
	addr, c := l.proc("nxStatusToString")
	if c != status.Success {
		buf[0] = 0
		return
	}
	syscall.SyscallN(addr, uintptr(uint32(int32(code))), uintptr(len(buf)), uintptr(bufPtr(buf)))
}

func (l *library) GetPropertySize(h Handle, id uint32) (uint32, status.Code) {
	addr, c := l.proc("nxGetPropertySize")
	if c != status.Success {
		return 0, c
	}
	var size uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(id), uintptr(unsafe.Pointer(&size)))
	return size, ret(r)
}

func (l *library) GetProperty(h Handle, id uint32, buf []byte) status.Code {
	addr, c := l.proc("nxGetProperty")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(id), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) SetProperty(h Handle, id uint32, buf []byte) status.Code {
	addr, c := l.proc("nxSetProperty")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(id), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) GetSubPropertySize(h Handle, index, id uint32) (uint32, status.Code) {
	addr, c := l.proc("nxGetSubPropertySize")
	if c != status.Success {
		return 0, c
	}
	var size uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(index), uintptr(id), uintptr(unsafe.Pointer(&size)))
	return size, ret(r)
}

func (l *library) GetSubProperty(h Handle, index, id uint32, buf []byte) status.Code {
	addr, c := l.proc("nxGetSubProperty")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(index), uintptr(id), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) SetSubProperty(h Handle, index, id uint32, buf []byte) status.Code {
	addr, c := l.proc("nxSetSubProperty")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(index), uintptr(id), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) DbGetPropertySize(h Handle, id uint32) (uint32, status.Code) {
	addr, c := l.proc("nxdbGetPropertySize")
	if c != status.Success {
		return 0, c
	}
	var size uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(id), uintptr(unsafe.Pointer(&size)))
	return size, ret(r)
}

func (l *library) DbGetProperty(h Handle, id uint32, buf []byte) status.Code {
	addr, c := l.proc("nxdbGetProperty")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(id), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) DbSetProperty(h Handle, id uint32, buf []byte) status.Code {
	addr, c := l.proc("nxdbSetProperty")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(id), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) CreateSession(database, cluster, list, iface string, mode uint32) (Handle, status.Code) {
	addr, c := l.proc("nxCreateSession")
	if c != status.Success {
		return NoHandle, c
	}
	db, c1 := cstr(database)
	cl, c2 := cstr(cluster)
	li, c3 := cstr(list)
	in, c4 := cstr(iface)
	for _, c := range []status.Code{c1, c2, c3, c4} {
		if c != status.Success {
			return NoHandle, c
		}
	}
	var h Handle
	r, _, _ := syscall.SyscallN(addr,
		uintptr(bufPtr(db)), uintptr(bufPtr(cl)), uintptr(bufPtr(li)), uintptr(bufPtr(in)),
		uintptr(mode), uintptr(unsafe.Pointer(&h)))
	return h, ret(r)
}

func (l *library) CreateSessionByRef(refs []Handle, iface string, mode uint32) (Handle, status.Code) {
	addr, c := l.proc("nxCreateSessionByRef")
	if c != status.Success {
		return NoHandle, c
	}
	in, c := cstr(iface)
	if c != status.Success {
		return NoHandle, c
	}
	var refPtr unsafe.Pointer
	if len(refs) > 0 {
		refPtr = unsafe.Pointer(&refs[0])
	}
	var h Handle
	r, _, _ := syscall.SyscallN(addr, uintptr(len(refs)), uintptr(refPtr), uintptr(bufPtr(in)),
		uintptr(mode), uintptr(unsafe.Pointer(&h)))
	return h, ret(r)
}

func (l *library) Clear(h Handle) status.Code {
	addr, c := l.proc("nxClear")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h))
	return ret(r)
}

func (l *library) Start(h Handle, scope uint32) status.Code {
	addr, c := l.proc("nxStart")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(scope))
	return ret(r)
}

func (l *library) Stop(h Handle, scope uint32) status.Code {
	addr, c := l.proc("nxStop")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(scope))
	return ret(r)
}

func (l *library) Flush(h Handle) status.Code {
	addr, c := l.proc("nxFlush")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h))
	return ret(r)
}

func (l *library) Wait(h Handle, condition, paramIn uint32, timeout float64) (uint32, status.Code) {
	addr, c := l.proc("nxWait")
	if c != status.Success {
		return 0, c
	}
	var out uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(condition), uintptr(paramIn),
		uintptr(math.Float64bits(timeout)), uintptr(unsafe.Pointer(&out)))
	return out, ret(r)
}

func (l *library) ReadFrame(h Handle, buf []byte, timeout float64) (int, status.Code) {
	addr, c := l.proc("nxReadFrame")
	if c != status.Success {
		return 0, c
	}
	var n uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(bufPtr(buf)), uintptr(len(buf)),
		uintptr(math.Float64bits(timeout)), uintptr(unsafe.Pointer(&n)))
	return int(n), ret(r)
}

func (l *library) WriteFrame(h Handle, buf []byte, timeout float64) status.Code {
	addr, c := l.proc("nxWriteFrame")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(bufPtr(buf)), uintptr(len(buf)),
		uintptr(math.Float64bits(timeout)))
	return ret(r)
}

func (l *library) ReadSignalSinglePoint(h Handle, values []float64, timestamps []uint64) status.Code {
	addr, c := l.proc("nxReadSignalSinglePoint")
	if c != status.Success {
		return c
	}
	var vp, tp unsafe.Pointer
	if len(values) > 0 {
		vp = unsafe.Pointer(&values[0])
	}
	if len(timestamps) > 0 {
		tp = unsafe.Pointer(&timestamps[0])
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(vp), uintptr(len(values)*8),
		uintptr(tp), uintptr(len(timestamps)*8))
	return ret(r)
}

func (l *library) WriteSignalSinglePoint(h Handle, values []float64) status.Code {
	addr, c := l.proc("nxWriteSignalSinglePoint")
	if c != status.Success {
		return c
	}
	var vp unsafe.Pointer
	if len(values) > 0 {
		vp = unsafe.Pointer(&values[0])
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(vp), uintptr(len(values)*8))
	return ret(r)
}

func (l *library) terminals(name string, h Handle, source, destination string) status.Code {
	addr, c := l.proc(name)
	if c != status.Success {
		return c
	}
	src, c1 := cstr(source)
	dst, c2 := cstr(destination)
	if c1 != status.Success {
		return c1
	}
	if c2 != status.Success {
		return c2
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(bufPtr(src)), uintptr(bufPtr(dst)))
	return ret(r)
}

func (l *library) ConnectTerminals(h Handle, source, destination string) status.Code {
	return l.terminals("nxConnectTerminals", h, source, destination)
}

func (l *library) DisconnectTerminals(h Handle, source, destination string) status.Code {
	return l.terminals("nxDisconnectTerminals", h, source, destination)
}

func (l *library) ReadState(h Handle, stateID uint32, buf []byte) (status.Code, status.Code) {
	addr, c := l.proc("nxReadState")
	if c != status.Success {
		return status.Success, c
	}
	var fault int32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(stateID), uintptr(len(buf)), uintptr(bufPtr(buf)),
		uintptr(unsafe.Pointer(&fault)))
	return status.Code(fault), ret(r)
}

func (l *library) WriteState(h Handle, stateID uint32, buf []byte) status.Code {
	addr, c := l.proc("nxWriteState")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(stateID), uintptr(len(buf)), uintptr(bufPtr(buf)))
	return ret(r)
}

func (l *library) Blink(iface Handle, modifier uint32) status.Code {
	addr, c := l.proc("nxBlink")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(iface), uintptr(modifier))
	return ret(r)
}

func (l *library) SystemOpen() (Handle, status.Code) {
	addr, c := l.proc("nxSystemOpen")
	if c != status.Success {
		return NoHandle, c
	}
	var h Handle
	r, _, _ := syscall.SyscallN(addr, uintptr(unsafe.Pointer(&h)))
	return h, ret(r)
}

func (l *library) SystemClose(h Handle) status.Code {
	addr, c := l.proc("nxSystemClose")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h))
	return ret(r)
}

func (l *library) DbOpenDatabase(name string) (Handle, status.Code) {
	addr, c := l.proc("nxdbOpenDatabase")
	if c != status.Success {
		return NoHandle, c
	}
	n, c := cstr(name)
	if c != status.Success {
		return NoHandle, c
	}
	var h Handle
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(n)), uintptr(unsafe.Pointer(&h)))
	return h, ret(r)
}

func (l *library) DbCloseDatabase(h Handle, closeAllRefs bool) status.Code {
	addr, c := l.proc("nxdbCloseDatabase")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), cbool(closeAllRefs))
	return ret(r)
}

func (l *library) objectByName(proc string, parent Handle, class uint32, name string) (Handle, status.Code) {
	addr, c := l.proc(proc)
	if c != status.Success {
		return NoHandle, c
	}
	n, c := cstr(name)
	if c != status.Success {
		return NoHandle, c
	}
	var h Handle
	r, _, _ := syscall.SyscallN(addr, uintptr(parent), uintptr(class), uintptr(bufPtr(n)), uintptr(unsafe.Pointer(&h)))
	return h, ret(r)
}

func (l *library) DbCreateObject(parent Handle, class uint32, name string) (Handle, status.Code) {
	return l.objectByName("nxdbCreateObject", parent, class, name)
}

func (l *library) DbFindObject(parent Handle, class uint32, name string) (Handle, status.Code) {
	return l.objectByName("nxdbFindObject", parent, class, name)
}

func (l *library) DbDeleteObject(h Handle) status.Code {
	addr, c := l.proc("nxdbDeleteObject")
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h))
	return ret(r)
}

func (l *library) DbSaveDatabase(h Handle, path string) status.Code {
	addr, c := l.proc("nxdbSaveDatabase")
	if c != status.Success {
		return c
	}
	p, c := cstr(path)
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(bufPtr(p)))
	return ret(r)
}

func (l *library) DbMerge(target, source Handle, copyMode uint32, prefix string, waitForComplete bool) (uint32, status.Code) {
	addr, c := l.proc("nxdbMerge")
	if c != status.Success {
		return 0, c
	}
	p, c := cstr(prefix)
	if c != status.Success {
		return 0, c
	}
	var percent uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(target), uintptr(source), uintptr(copyMode), uintptr(bufPtr(p)),
		cbool(waitForComplete), uintptr(unsafe.Pointer(&percent)))
	return percent, ret(r)
}

func (l *library) DbAddAlias64(alias, path string, defaultBaudRate uint64) status.Code {
	addr, c := l.proc("nxdbAddAlias64")
	if c != status.Success {
		return c
	}
	a, c1 := cstr(alias)
	p, c2 := cstr(path)
	if c1 != status.Success {
		return c1
	}
	if c2 != status.Success {
		return c2
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(a)), uintptr(bufPtr(p)), uintptr(defaultBaudRate))
	return ret(r)
}

func (l *library) DbRemoveAlias(alias string) status.Code {
	addr, c := l.proc("nxdbRemoveAlias")
	if c != status.Success {
		return c
	}
	a, c := cstr(alias)
	if c != status.Success {
		return c
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(a)))
	return ret(r)
}

func (l *library) DbDeploy(ip, alias string, waitForComplete bool) (uint32, status.Code) {
	addr, c := l.proc("nxdbDeploy")
	if c != status.Success {
		return 0, c
	}
	i, c1 := cstr(ip)
	a, c2 := cstr(alias)
	if c1 != status.Success {
		return 0, c1
	}
	if c2 != status.Success {
		return 0, c2
	}
	var percent uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(i)), uintptr(bufPtr(a)), cbool(waitForComplete),
		uintptr(unsafe.Pointer(&percent)))
	return percent, ret(r)
}

func (l *library) DbUndeploy(ip, alias string) status.Code {
	addr, c := l.proc("nxdbUndeploy")
	if c != status.Success {
		return c
	}
	i, c1 := cstr(ip)
	a, c2 := cstr(alias)
	if c1 != status.Success {
		return c1
	}
	if c2 != status.Success {
		return c2
	}
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(i)), uintptr(bufPtr(a)))
	return ret(r)
}

func (l *library) DbGetDatabaseListSizes(ip string) (uint32, uint32, status.Code) {
	addr, c := l.proc("nxdbGetDatabaseListSizes")
	if c != status.Success {
		return 0, 0, c
	}
	i, c := cstr(ip)
	if c != status.Success {
		return 0, 0, c
	}
	var aliasSize, pathSize uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(i)), uintptr(unsafe.Pointer(&aliasSize)),
		uintptr(unsafe.Pointer(&pathSize)))
	return aliasSize, pathSize, ret(r)
}

func (l *library) DbGetDatabaseList(ip string, aliases, paths []byte) (uint32, status.Code) {
	addr, c := l.proc("nxdbGetDatabaseList")
	if c != status.Success {
		return 0, c
	}
	i, c := cstr(ip)
	if c != status.Success {
		return 0, c
	}
	var count uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(bufPtr(i)),
		uintptr(len(aliases)), uintptr(bufPtr(aliases)),
		uintptr(len(paths)), uintptr(bufPtr(paths)),
		uintptr(unsafe.Pointer(&count)))
	return count, ret(r)
}

func (l *library) DbGetDBCAttributeSize(h Handle, mode uint32, name string) (uint32, status.Code) {
	addr, c := l.proc("nxdbGetDBCAttributeSize")
	if c != status.Success {
		return 0, c
	}
	n, c := cstr(name)
	if c != status.Success {
		return 0, c
	}
	var size uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(mode), uintptr(bufPtr(n)), uintptr(unsafe.Pointer(&size)))
	return size, ret(r)
}

func (l *library) DbGetDBCAttribute(h Handle, mode uint32, name string, buf []byte) (bool, status.Code) {
	addr, c := l.proc("nxdbGetDBCAttribute")
	if c != status.Success {
		return false, c
	}
	n, c := cstr(name)
	if c != status.Success {
		return false, c
	}
	var isDefault uint32
	r, _, _ := syscall.SyscallN(addr, uintptr(h), uintptr(mode), uintptr(bufPtr(n)),
		uintptr(len(buf)), uintptr(bufPtr(buf)), uintptr(unsafe.Pointer(&isDefault)))
	return isDefault != 0, ret(r)
}
