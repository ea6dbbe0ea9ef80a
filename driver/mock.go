package driver

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/LoveWonYoung/nixnet/status"
)

// MockNative 是内存中的虚拟 Native 实现
// 用于开发和测试，不依赖实际硬件：写入的属性读取时原样返回，每次调用都会记录，
// 并模拟数据库对象树、帧队列和信号值，足以驱动上层对象。
type MockNative struct {
	mu sync.Mutex

	nextHandle Handle
	calls      []Call
	failures   map[string][]status.Code
	messages   map[status.Code]string

	props    map[propKey][]byte
	sessions map[Handle]*mockSession
	systems  map[Handle]bool
	objects  map[Handle]*mockObject
	classes  map[uint32]MockClass
	aliases  map[string]mockAlias
	dbcAttrs map[dbcKey]string
	states   map[stateKey][]byte
}

// Call 记录一次驱动调用
type Call struct {
	Method string
	Handle Handle
	Index  uint32
	ID     uint32
	Size   int
	Args   []string
}

// MockClass 描述某类数据库对象与父对象的关系：
// 父对象的哪个属性以引用数组列出子对象，以及哪个属性保存对象名。
type MockClass struct {
	NameProp  uint32
	ListProp  uint32
	ParentRef uint32
}

type spaceKind byte

const (
	spaceSession spaceKind = iota
	spaceSub
	spaceDatabase
)

type propKey struct {
	space spaceKind
	h     Handle
	index uint32
	id    uint32
}

type dbcKey struct {
	h    Handle
	name string
}

type stateKey struct {
	h  Handle
	id uint32
}

type mockSession struct {
	database string
	cluster  string
	list     string
	iface    string
	mode     uint32
	refs     []Handle
	open     bool
	started  bool
	rx       [][]byte
	tx       [][]byte
	values   []float64
	stamps   []uint64
	wait     uint32
	terms    map[string]string
}

type mockObject struct {
	class  uint32
	name   string
	parent Handle
	alias  string
	open   int
	saved  []string
}

type mockAlias struct {
	path string
	baud uint64
}

// NewMockNative 创建一个空的虚拟驱动，句柄从 1 开始分配
func NewMockNative() *MockNative {
	return &MockNative{
		nextHandle: 1,
		failures:   make(map[string][]status.Code),
		messages:   make(map[status.Code]string),
		props:      make(map[propKey][]byte),
		sessions:   make(map[Handle]*mockSession),
		systems:    make(map[Handle]bool),
		objects:    make(map[Handle]*mockObject),
		classes:    make(map[uint32]MockClass),
		aliases:    make(map[string]mockAlias),
		dbcAttrs:   make(map[dbcKey]string),
		states:     make(map[stateKey][]byte),
	}
}

var _ Native = (*MockNative)(nil)

// ============================================================================
// Mock 专用方法 - 用于测试
// ============================================================================

// SetNextHandle 指定下一个创建对象使用的句柄
func (m *MockNative) SetNextHandle(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextHandle = h
}

// FailNext 让 method 的下一次调用直接返回 code
// 多次设置时按顺序消耗
func (m *MockNative) FailNext(method string, code status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = append(m.failures[method], code)
}

// SetMessage 设置 StatusToString 对 code 返回的文本
func (m *MockNative) SetMessage(code status.Code, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[code] = msg
}

// RegisterClass 登记一类数据库对象的父子关系
func (m *MockNative) RegisterClass(class uint32, c MockClass) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classes[class] = c
}

// SetProp 直接写入会话空间属性的原始字节
func (m *MockNative) SetProp(h Handle, id uint32, value []byte) {
	m.store(propKey{space: spaceSession, h: h, id: id}, value)
}

// SetSubProp 直接写入带子索引属性的原始字节
func (m *MockNative) SetSubProp(h Handle, index, id uint32, value []byte) {
	m.store(propKey{space: spaceSub, h: h, index: index, id: id}, value)
}

// SetDbProp 直接写入数据库空间属性的原始字节
func (m *MockNative) SetDbProp(h Handle, id uint32, value []byte) {
	m.store(propKey{space: spaceDatabase, h: h, id: id}, value)
}

// Prop 返回会话空间属性的原始字节
func (m *MockNative) Prop(h Handle, id uint32) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.props[propKey{space: spaceSession, h: h, id: id}]
	return append([]byte(nil), v...), ok
}

// DbProp 返回数据库空间属性的原始字节
func (m *MockNative) DbProp(h Handle, id uint32) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.props[propKey{space: spaceDatabase, h: h, id: id}]
	return append([]byte(nil), v...), ok
}

func (m *MockNative) store(k propKey, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.props[k] = append([]byte{}, value...)
}

// InjectFrames 向 h 的接收队列注入原始帧数据
func (m *MockNative) InjectFrames(h Handle, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[h]
	if !ok || !s.open {
		return fmt.Errorf("session %d is not open", h)
	}
	s.rx = append(s.rx, append([]byte{}, raw...))
	return nil
}

// Written 返回 h 上所有 WriteFrame 写入的数据
func (m *MockNative) Written(h Handle) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[h]
	if !ok {
		return nil
	}
	out := make([][]byte, len(s.tx))
	for i, b := range s.tx {
		out[i] = append([]byte{}, b...)
	}
	return out
}

// SetSignals 设置 ReadSignalSinglePoint 返回的信号值和时间戳
func (m *MockNative) SetSignals(h Handle, values []float64, stamps []uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[h]; ok {
		s.values = append([]float64{}, values...)
		s.stamps = append([]uint64{}, stamps...)
	}
}

// Signals 返回最近一次 WriteSignalSinglePoint 写入的值
func (m *MockNative) Signals(h Handle) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[h]; ok {
		return append([]float64{}, s.values...)
	}
	return nil
}

// SetWaitResult 设置 Wait 返回的 ParamOut
func (m *MockNative) SetWaitResult(h Handle, out uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[h]; ok {
		s.wait = out
	}
}

// SetState 设置 ReadState 返回的数据
func (m *MockNative) SetState(h Handle, id uint32, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[stateKey{h, id}] = append([]byte{}, value...)
}

// SetDBCAttribute 为数据库对象设置 DBC 属性
func (m *MockNative) SetDBCAttribute(h Handle, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dbcAttrs[dbcKey{h, name}] = value
}

// SessionOpen 判断 h 是否为未关闭的会话
func (m *MockNative) SessionOpen(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[h]
	return ok && s.open
}

// SessionStarted 判断 h 是否已启动
func (m *MockNative) SessionStarted(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[h]
	return ok && s.started
}

// OpenDatabases 返回尚未关闭的数据库打开次数
func (m *MockNative) OpenDatabases() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, o := range m.objects {
		if o.parent == NoHandle && o.alias != "" {
			n += o.open
		}
	}
	return n
}

// Saved 返回 DbSaveDatabase 保存过的路径
func (m *MockNative) Saved(h Handle) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.objects[h]; ok {
		return append([]string{}, o.saved...)
	}
	return nil
}

// Calls 返回调用记录的副本
func (m *MockNative) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call{}, m.calls...)
}

// CountCalls 返回 method 被调用的次数
func (m *MockNative) CountCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// ResetCalls 清空调用记录
func (m *MockNative) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// ============================================================================
// Native 接口实现
// ============================================================================

// begin 记录调用并取出预设的失败码，调用方须持有 m.mu
func (m *MockNative) begin(c Call) (status.Code, bool) {
	m.calls = append(m.calls, c)
	if q := m.failures[c.Method]; len(q) > 0 {
		m.failures[c.Method] = q[1:]
		return q[0], true
	}
	return status.Success, false
}

func (m *MockNative) alloc() Handle {
	h := m.nextHandle
	for {
		_, s := m.sessions[h]
		_, o := m.objects[h]
		_, y := m.systems[h]
		if h != NoHandle && !s && !o && !y {
			break
		}
		h++
	}
	m.nextHandle = h + 1
	return h
}

func (m *MockNative) StatusToString(code status.Code, buf []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: "nxStatusToString", Size: len(buf)})
	msg, ok := m.messages[code]
	if !ok {
		msg = fmt.Sprintf("NI-XNET status 0x%08X (%s)", uint32(code), code.Kind())
	}
	n := copy(buf, msg)
	if n < len(buf) {
		buf[n] = 0
	}
}

func (m *MockNative) sizeOf(method string, k propKey) (uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: method, Handle: k.h, Index: k.index, ID: k.id}); failed {
		return 0, code
	}
	v, ok := m.props[k]
	if !ok {
		return 0, status.CodeInvalidPropertyID
	}
	return uint32(len(v)), status.Success
}

func (m *MockNative) get(method string, k propKey, buf []byte) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: method, Handle: k.h, Index: k.index, ID: k.id, Size: len(buf)}); failed {
		return code
	}
	v, ok := m.props[k]
	if !ok {
		return status.CodeInvalidPropertyID
	}
	if len(buf) < len(v) {
		return status.CodeInvalidPropertySize
	}
	n := copy(buf, v)
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	return status.Success
}

func (m *MockNative) set(method string, k propKey, buf []byte) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: method, Handle: k.h, Index: k.index, ID: k.id, Size: len(buf)}); failed {
		return code
	}
	m.props[k] = append([]byte{}, buf...)
	return status.Success
}

func (m *MockNative) GetPropertySize(h Handle, id uint32) (uint32, status.Code) {
	return m.sizeOf("nxGetPropertySize", propKey{space: spaceSession, h: h, id: id})
}

func (m *MockNative) GetProperty(h Handle, id uint32, buf []byte) status.Code {
	return m.get("nxGetProperty", propKey{space: spaceSession, h: h, id: id}, buf)
}

func (m *MockNative) SetProperty(h Handle, id uint32, buf []byte) status.Code {
	return m.set("nxSetProperty", propKey{space: spaceSession, h: h, id: id}, buf)
}

func (m *MockNative) GetSubPropertySize(h Handle, index, id uint32) (uint32, status.Code) {
	return m.sizeOf("nxGetSubPropertySize", propKey{space: spaceSub, h: h, index: index, id: id})
}

func (m *MockNative) GetSubProperty(h Handle, index, id uint32, buf []byte) status.Code {
	return m.get("nxGetSubProperty", propKey{space: spaceSub, h: h, index: index, id: id}, buf)
}

func (m *MockNative) SetSubProperty(h Handle, index, id uint32, buf []byte) status.Code {
	return m.set("nxSetSubProperty", propKey{space: spaceSub, h: h, index: index, id: id}, buf)
}

func (m *MockNative) DbGetPropertySize(h Handle, id uint32) (uint32, status.Code) {
	return m.sizeOf("nxdbGetPropertySize", propKey{space: spaceDatabase, h: h, id: id})
}

func (m *MockNative) DbGetProperty(h Handle, id uint32, buf []byte) status.Code {
	return m.get("nxdbGetProperty", propKey{space: spaceDatabase, h: h, id: id}, buf)
}

func (m *MockNative) DbSetProperty(h Handle, id uint32, buf []byte) status.Code {
	return m.set("nxdbSetProperty", propKey{space: spaceDatabase, h: h, id: id}, buf)
}

func (m *MockNative) CreateSession(database, cluster, list, iface string, mode uint32) (Handle, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxCreateSession", Args: []string{database, cluster, list, iface}}); failed {
		return NoHandle, code
	}
	if iface == "" {
		return NoHandle, status.CodeInterfaceNotFound
	}
	h := m.alloc()
	m.sessions[h] = &mockSession{
		database: database, cluster: cluster, list: list, iface: iface, mode: mode,
		open: true, terms: make(map[string]string),
	}
	m.seedSession(h, list)
	return h, status.Success
}

func (m *MockNative) CreateSessionByRef(refs []Handle, iface string, mode uint32) (Handle, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxCreateSessionByRef", Size: len(refs), Args: []string{iface}}); failed {
		return NoHandle, code
	}
	if iface == "" {
		return NoHandle, status.CodeInterfaceNotFound
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		o, ok := m.objects[r]
		if !ok {
			return NoHandle, status.CodeInvalidDatabaseHandle
		}
		names = append(names, o.name)
	}
	h := m.alloc()
	m.sessions[h] = &mockSession{
		iface: iface, mode: mode, refs: append([]Handle{}, refs...),
		open: true, terms: make(map[string]string),
	}
	m.seedSession(h, strings.Join(names, ","))
	return h, status.Success
}

// 会话列表及数量属性，与 props.SessionList / props.SessionNumInList 一致，
// 创建会话时预先填好，集合无需额外设置即可使用
const (
	mockSessionList      uint32 = 0x04100003
	mockSessionNumInList uint32 = 0x00100004
)

func (m *MockNative) seedSession(h Handle, list string) {
	n := uint32(0)
	if list != "" {
		n = uint32(len(strings.Split(list, ",")))
	}
	m.props[propKey{space: spaceSession, h: h, id: mockSessionList}] = []byte(list)
	m.props[propKey{space: spaceSession, h: h, id: mockSessionNumInList}] = []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
}

func (m *MockNative) session(method string, h Handle, args ...string) (*mockSession, status.Code) {
	if code, failed := m.begin(Call{Method: method, Handle: h, Args: args}); failed {
		return nil, code
	}
	s, ok := m.sessions[h]
	if !ok || !s.open {
		return nil, status.CodeInvalidSessionHandle
	}
	return s, status.Success
}

func (m *MockNative) Clear(h Handle) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxClear", h)
	if code != status.Success {
		return code
	}
	s.open = false
	s.started = false
	return status.Success
}

func (m *MockNative) Start(h Handle, scope uint32) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxStart", h)
	if code != status.Success {
		return code
	}
	s.started = true
	return status.Success
}

func (m *MockNative) Stop(h Handle, scope uint32) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxStop", h)
	if code != status.Success {
		return code
	}
	s.started = false
	return status.Success
}

func (m *MockNative) Flush(h Handle) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxFlush", h)
	if code != status.Success {
		return code
	}
	s.rx = nil
	return status.Success
}

func (m *MockNative) Wait(h Handle, condition, paramIn uint32, timeout float64) (uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxWait", h)
	if code != status.Success {
		return 0, code
	}
	return s.wait, status.Success
}

func (m *MockNative) ReadFrame(h Handle, buf []byte, timeout float64) (int, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxReadFrame", Handle: h, Size: len(buf)}); failed {
		return 0, code
	}
	s, ok := m.sessions[h]
	if !ok || !s.open {
		return 0, status.CodeInvalidSessionHandle
	}
	n := 0
	for len(s.rx) > 0 && n+len(s.rx[0]) <= len(buf) {
		n += copy(buf[n:], s.rx[0])
		s.rx = s.rx[1:]
	}
	if n == 0 && timeout != 0 && len(buf) > 0 {
		return 0, status.CodeTimeout
	}
	return n, status.Success
}

func (m *MockNative) WriteFrame(h Handle, buf []byte, timeout float64) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxWriteFrame", Handle: h, Size: len(buf)}); failed {
		return code
	}
	s, ok := m.sessions[h]
	if !ok || !s.open {
		return status.CodeInvalidSessionHandle
	}
	s.tx = append(s.tx, append([]byte{}, buf...))
	return status.Success
}

func (m *MockNative) ReadSignalSinglePoint(h Handle, values []float64, timestamps []uint64) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxReadSignalSinglePoint", h)
	if code != status.Success {
		return code
	}
	copy(values, s.values)
	copy(timestamps, s.stamps)
	return status.Success
}

func (m *MockNative) WriteSignalSinglePoint(h Handle, values []float64) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxWriteSignalSinglePoint", h)
	if code != status.Success {
		return code
	}
	s.values = append([]float64{}, values...)
	return status.Success
}

func (m *MockNative) ConnectTerminals(h Handle, source, destination string) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxConnectTerminals", h, source, destination)
	if code != status.Success {
		return code
	}
	if _, busy := s.terms[destination]; busy {
		return status.CodeTerminalInUse
	}
	s.terms[destination] = source
	return status.Success
}

func (m *MockNative) DisconnectTerminals(h Handle, source, destination string) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, code := m.session("nxDisconnectTerminals", h, source, destination)
	if code != status.Success {
		return code
	}
	if s.terms[destination] != source {
		return status.CodeInvalidTerminal
	}
	delete(s.terms, destination)
	return status.Success
}

func (m *MockNative) ReadState(h Handle, stateID uint32, buf []byte) (status.Code, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxReadState", Handle: h, ID: stateID, Size: len(buf)}); failed {
		return status.Success, code
	}
	v, ok := m.states[stateKey{h, stateID}]
	if !ok {
		return status.Success, status.CodeInvalidPropertyID
	}
	if len(buf) < len(v) {
		return status.Success, status.CodeInvalidPropertySize
	}
	copy(buf, v)
	return status.Success, status.Success
}

func (m *MockNative) WriteState(h Handle, stateID uint32, buf []byte) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxWriteState", Handle: h, ID: stateID, Size: len(buf)}); failed {
		return code
	}
	m.states[stateKey{h, stateID}] = append([]byte{}, buf...)
	return status.Success
}

func (m *MockNative) Blink(iface Handle, modifier uint32) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	code, _ := m.begin(Call{Method: "nxBlink", Handle: iface, ID: modifier})
	return code
}

func (m *MockNative) SystemOpen() (Handle, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxSystemOpen"}); failed {
		return NoHandle, code
	}
	h := m.alloc()
	m.systems[h] = true
	return h, status.Success
}

func (m *MockNative) SystemClose(h Handle) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxSystemClose", Handle: h}); failed {
		return code
	}
	if !m.systems[h] {
		return status.CodeInvalidSessionHandle
	}
	delete(m.systems, h)
	return status.Success
}

func (m *MockNative) DbOpenDatabase(name string) (Handle, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbOpenDatabase", Args: []string{name}}); failed {
		return NoHandle, code
	}
	if name == "" {
		return NoHandle, status.CodeDatabaseAliasNotFound
	}
	for h, o := range m.objects {
		if o.parent == NoHandle && o.alias == name {
			o.open++
			return h, status.Success
		}
	}
	h := m.alloc()
	m.objects[h] = &mockObject{alias: name, name: name, open: 1}
	return h, status.Success
}

func (m *MockNative) DbCloseDatabase(h Handle, closeAllRefs bool) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbCloseDatabase", Handle: h}); failed {
		return code
	}
	o, ok := m.objects[h]
	if !ok || o.alias == "" || o.open == 0 {
		return status.CodeInvalidDatabaseHandle
	}
	if closeAllRefs {
		o.open = 0
	} else {
		o.open--
	}
	return status.Success
}

func (m *MockNative) DbCreateObject(parent Handle, class uint32, name string) (Handle, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbCreateObject", Handle: parent, ID: class, Args: []string{name}}); failed {
		return NoHandle, code
	}
	if _, ok := m.objects[parent]; !ok {
		return NoHandle, status.CodeInvalidDatabaseHandle
	}
	if _, found := m.find(parent, class, name); found {
		return NoHandle, status.CodeDatabaseDuplicateName
	}
	h := m.alloc()
	m.objects[h] = &mockObject{class: class, name: name, parent: parent}
	c := m.classes[class]
	if c.NameProp != 0 {
		m.props[propKey{space: spaceDatabase, h: h, id: c.NameProp}] = append([]byte(name), 0)
	}
	if c.ParentRef != 0 {
		m.props[propKey{space: spaceDatabase, h: h, id: c.ParentRef}] = refBytes([]Handle{parent})
	}
	if c.ListProp != 0 {
		k := propKey{space: spaceDatabase, h: parent, id: c.ListProp}
		m.props[k] = append(m.props[k], refBytes([]Handle{h})...)
	}
	return h, status.Success
}

func (m *MockNative) find(parent Handle, class uint32, name string) (Handle, bool) {
	var hs []Handle
	for h, o := range m.objects {
		if o.parent == parent && o.class == class && o.name == name {
			hs = append(hs, h)
		}
	}
	if len(hs) == 0 {
		return NoHandle, false
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs[0], true
}

func (m *MockNative) DbFindObject(parent Handle, class uint32, name string) (Handle, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbFindObject", Handle: parent, ID: class, Args: []string{name}}); failed {
		return NoHandle, code
	}
	h, ok := m.find(parent, class, name)
	if !ok {
		return NoHandle, status.CodeDatabaseObjectNotFound
	}
	return h, status.Success
}

func (m *MockNative) DbDeleteObject(h Handle) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbDeleteObject", Handle: h}); failed {
		return code
	}
	o, ok := m.objects[h]
	if !ok || o.parent == NoHandle {
		return status.CodeInvalidDatabaseHandle
	}
	delete(m.objects, h)
	if c := m.classes[o.class]; c.ListProp != 0 {
		k := propKey{space: spaceDatabase, h: o.parent, id: c.ListProp}
		refs := parseRefs(m.props[k])
		kept := refs[:0]
		for _, r := range refs {
			if r != h {
				kept = append(kept, r)
			}
		}
		m.props[k] = refBytes(kept)
	}
	return status.Success
}

func (m *MockNative) DbSaveDatabase(h Handle, path string) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbSaveDatabase", Handle: h, Args: []string{path}}); failed {
		return code
	}
	o, ok := m.objects[h]
	if !ok || o.alias == "" {
		return status.CodeInvalidDatabaseHandle
	}
	o.saved = append(o.saved, path)
	return status.Success
}

func (m *MockNative) DbMerge(target, source Handle, copyMode uint32, prefix string, waitForComplete bool) (uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbMerge", Handle: target, ID: copyMode, Args: []string{prefix}}); failed {
		return 0, code
	}
	if _, ok := m.objects[target]; !ok {
		return 0, status.CodeInvalidDatabaseHandle
	}
	if _, ok := m.objects[source]; !ok {
		return 0, status.CodeInvalidDatabaseHandle
	}
	return 100, status.Success
}

func (m *MockNative) DbAddAlias64(alias, path string, defaultBaudRate uint64) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbAddAlias64", Args: []string{alias, path}}); failed {
		return code
	}
	m.aliases[alias] = mockAlias{path: path, baud: defaultBaudRate}
	return status.Success
}

func (m *MockNative) DbRemoveAlias(alias string) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbRemoveAlias", Args: []string{alias}}); failed {
		return code
	}
	if _, ok := m.aliases[alias]; !ok {
		return status.CodeDatabaseAliasNotFound
	}
	delete(m.aliases, alias)
	return status.Success
}

func (m *MockNative) DbDeploy(ip, alias string, waitForComplete bool) (uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbDeploy", Args: []string{ip, alias}}); failed {
		return 0, code
	}
	if _, ok := m.aliases[alias]; !ok {
		return 0, status.CodeDatabaseAliasNotFound
	}
	return 100, status.Success
}

func (m *MockNative) DbUndeploy(ip, alias string) status.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbUndeploy", Args: []string{ip, alias}}); failed {
		return code
	}
	if _, ok := m.aliases[alias]; !ok {
		return status.CodeDatabaseAliasNotFound
	}
	return status.Success
}

func (m *MockNative) aliasLists() (string, string) {
	names := make([]string, 0, len(m.aliases))
	for a := range m.aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	paths := make([]string, len(names))
	for i, a := range names {
		paths[i] = m.aliases[a].path
	}
	return strings.Join(names, ","), strings.Join(paths, ",")
}

func (m *MockNative) DbGetDatabaseListSizes(ip string) (uint32, uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbGetDatabaseListSizes", Args: []string{ip}}); failed {
		return 0, 0, code
	}
	a, p := m.aliasLists()
	return uint32(len(a) + 1), uint32(len(p) + 1), status.Success
}

func (m *MockNative) DbGetDatabaseList(ip string, aliases, paths []byte) (uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbGetDatabaseList", Size: len(aliases), Args: []string{ip}}); failed {
		return 0, code
	}
	a, p := m.aliasLists()
	if len(aliases) < len(a)+1 || len(paths) < len(p)+1 {
		return 0, status.CodeInvalidPropertySize
	}
	aliases[copy(aliases, a)] = 0
	paths[copy(paths, p)] = 0
	return uint32(len(m.aliases)), status.Success
}

func (m *MockNative) DbGetDBCAttributeSize(h Handle, mode uint32, name string) (uint32, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbGetDBCAttributeSize", Handle: h, ID: mode, Args: []string{name}}); failed {
		return 0, code
	}
	v, ok := m.dbcAttrs[dbcKey{h, name}]
	if !ok {
		return 0, status.CodeDatabaseObjectNotFound
	}
	return uint32(len(v) + 1), status.Success
}

func (m *MockNative) DbGetDBCAttribute(h Handle, mode uint32, name string, buf []byte) (bool, status.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code, failed := m.begin(Call{Method: "nxdbGetDBCAttribute", Handle: h, ID: mode, Size: len(buf), Args: []string{name}}); failed {
		return false, code
	}
	v, ok := m.dbcAttrs[dbcKey{h, name}]
	if !ok {
		return false, status.CodeDatabaseObjectNotFound
	}
	if len(buf) < len(v)+1 {
		return false, status.CodeInvalidPropertySize
	}
	buf[copy(buf, v)] = 0
	return false, status.Success
}

func refBytes(hs []Handle) []byte {
	out := make([]byte, 0, 4*len(hs))
	for _, h := range hs {
		out = append(out, byte(h), byte(h>>8), byte(h>>16), byte(h>>24))
	}
	return out
}

func parseRefs(b []byte) []Handle {
	hs := make([]Handle, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		hs = append(hs, Handle(b[i])|Handle(b[i+1])<<8|Handle(b[i+2])<<16|Handle(b[i+3])<<24)
	}
	return hs
}
