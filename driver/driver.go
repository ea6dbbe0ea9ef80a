package driver

import (
	"github.com/LoveWonYoung/nixnet/status"
)

// Handle 是驱动侧对象的不透明引用：会话、系统、接口、设备、数据库或数据库对象。
// 句柄本身不带类型信息，调用方需根据上下文知道它指向哪类对象。
type Handle uint32

// NoHandle 表示可选引用"未设置/未找到"
const NoHandle Handle = 0

// Native 定义了 NI-XNET C API 的统一接口
// 每个方法对应一个驱动入口点，直接返回原始状态码，不做分类也不重试。
//
// 字符串必须是 ASCII（见 ASCII）。缓冲区的长度即为传给驱动的 size 参数。
type Native interface {
	status.Describer

	// 会话空间属性
	GetPropertySize(h Handle, id uint32) (uint32, status.Code)
	GetProperty(h Handle, id uint32, buf []byte) status.Code
	SetProperty(h Handle, id uint32, buf []byte) status.Code

	// 以会话句柄 + 列表下标寻址的属性
	GetSubPropertySize(h Handle, index, id uint32) (uint32, status.Code)
	GetSubProperty(h Handle, index, id uint32, buf []byte) status.Code
	SetSubProperty(h Handle, index, id uint32, buf []byte) status.Code

	// 数据库空间属性
	DbGetPropertySize(h Handle, id uint32) (uint32, status.Code)
	DbGetProperty(h Handle, id uint32, buf []byte) status.Code
	DbSetProperty(h Handle, id uint32, buf []byte) status.Code

	CreateSession(database, cluster, list, iface string, mode uint32) (Handle, status.Code)
	CreateSessionByRef(refs []Handle, iface string, mode uint32) (Handle, status.Code)
	Clear(h Handle) status.Code
	Start(h Handle, scope uint32) status.Code
	Stop(h Handle, scope uint32) status.Code
	Flush(h Handle) status.Code
	Wait(h Handle, condition, paramIn uint32, timeout float64) (uint32, status.Code)
	ReadFrame(h Handle, buf []byte, timeout float64) (int, status.Code)
	WriteFrame(h Handle, buf []byte, timeout float64) status.Code
	ReadSignalSinglePoint(h Handle, values []float64, timestamps []uint64) status.Code
	WriteSignalSinglePoint(h Handle, values []float64) status.Code
	ConnectTerminals(h Handle, source, destination string) status.Code
	DisconnectTerminals(h Handle, source, destination string) status.Code
	ReadState(h Handle, stateID uint32, buf []byte) (fault status.Code, code status.Code)
	WriteState(h Handle, stateID uint32, buf []byte) status.Code
	Blink(iface Handle, modifier uint32) status.Code

	SystemOpen() (Handle, status.Code)
	SystemClose(h Handle) status.Code

	DbOpenDatabase(name string) (Handle, status.Code)
	DbCloseDatabase(h Handle, closeAllRefs bool) status.Code
	DbCreateObject(parent Handle, class uint32, name string) (Handle, status.Code)
	DbFindObject(parent Handle, class uint32, name string) (Handle, status.Code)
	DbDeleteObject(h Handle) status.Code
	DbSaveDatabase(h Handle, path string) status.Code
	DbMerge(target, source Handle, copyMode uint32, prefix string, waitForComplete bool) (uint32, status.Code)
	DbAddAlias64(alias, path string, defaultBaudRate uint64) status.Code
	DbRemoveAlias(alias string) status.Code
	DbDeploy(ip, alias string, waitForComplete bool) (uint32, status.Code)
	DbUndeploy(ip, alias string) status.Code
	DbGetDatabaseListSizes(ip string) (aliasSize, pathSize uint32, code status.Code)
	DbGetDatabaseList(ip string, aliases, paths []byte) (uint32, status.Code)
	DbGetDBCAttributeSize(h Handle, mode uint32, name string) (uint32, status.Code)
	DbGetDBCAttribute(h Handle, mode uint32, name string, buf []byte) (isDefault bool, code status.Code)
}
