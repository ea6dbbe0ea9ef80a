package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/status"
)

func TestMockPropertyEcho(t *testing.T) {
	m := NewMockNative()
	m.SetNextHandle(7)
	h, code := m.CreateSession("", "", "", "CAN1", 6)
	require.Equal(t, status.Success, code)
	require.Equal(t, Handle(7), h)

	require.Equal(t, status.Success, m.SetProperty(h, 0x00100001, []byte{100, 0, 0, 0}))
	size, code := m.GetPropertySize(h, 0x00100001)
	require.Equal(t, status.Success, code)
	require.Equal(t, uint32(4), size)

	buf := make([]byte, 4)
	require.Equal(t, status.Success, m.GetProperty(h, 0x00100001, buf))
	require.Equal(t, []byte{100, 0, 0, 0}, buf)

	require.Equal(t, status.CodeInvalidPropertySize, m.GetProperty(h, 0x00100001, make([]byte, 2)))
	require.Equal(t, status.CodeInvalidPropertyID, m.GetProperty(h, 0x00100099, buf))
}

func TestMockSubPropertiesAreSeparate(t *testing.T) {
	m := NewMockNative()
	require.Equal(t, status.Success, m.SetSubProperty(1, 0, 0x42, []byte{1}))
	require.Equal(t, status.Success, m.SetSubProperty(1, 1, 0x42, []byte{2}))

	buf := make([]byte, 1)
	require.Equal(t, status.Success, m.GetSubProperty(1, 1, 0x42, buf))
	require.Equal(t, byte(2), buf[0])
	require.Equal(t, status.CodeInvalidPropertyID, m.GetProperty(1, 0x42, buf))
}

func TestMockCallLogAndFailures(t *testing.T) {
	m := NewMockNative()
	m.FailNext("nxStart", status.CodeInterfaceInUse)

	h, code := m.CreateSession("db", "cl", "F1,F2", "CAN1", 6)
	require.Equal(t, status.Success, code)
	require.Equal(t, status.CodeInterfaceInUse, m.Start(h, 0))
	require.False(t, m.SessionStarted(h))
	require.Equal(t, status.Success, m.Start(h, 0))
	require.True(t, m.SessionStarted(h))

	require.Equal(t, 2, m.CountCalls("nxStart"))
	calls := m.Calls()
	require.Equal(t, "nxCreateSession", calls[0].Method)
	require.Equal(t, []string{"db", "cl", "F1,F2", "CAN1"}, calls[0].Args)

	m.ResetCalls()
	require.Empty(t, m.Calls())
}

func TestMockSessionLifecycle(t *testing.T) {
	m := NewMockNative()
	h, _ := m.CreateSession("", "", "", "CAN1", 6)
	require.True(t, m.SessionOpen(h))
	require.Equal(t, status.Success, m.Clear(h))
	require.False(t, m.SessionOpen(h))
	require.Equal(t, status.CodeInvalidSessionHandle, m.Clear(h))

	_, code := m.CreateSession("", "", "", "", 6)
	require.Equal(t, status.CodeInterfaceNotFound, code)
}

func TestMockFrameQueue(t *testing.T) {
	m := NewMockNative()
	h, _ := m.CreateSession("", "", "", "CAN1", 6)

	require.NoError(t, m.InjectFrames(h, make([]byte, 24)))
	require.NoError(t, m.InjectFrames(h, make([]byte, 24)))

	buf := make([]byte, 30)
	n, code := m.ReadFrame(h, buf, 0)
	require.Equal(t, status.Success, code)
	require.Equal(t, 24, n)

	n, code = m.ReadFrame(h, make([]byte, 48), 0)
	require.Equal(t, status.Success, code)
	require.Equal(t, 24, n)

	_, code = m.ReadFrame(h, make([]byte, 48), 0.5)
	require.Equal(t, status.CodeTimeout, code)

	require.Equal(t, status.Success, m.WriteFrame(h, []byte{1, 2, 3}, 0))
	require.Equal(t, [][]byte{{1, 2, 3}}, m.Written(h))
}

func TestMockDatabaseTree(t *testing.T) {
	const (
		classCluster uint32 = 0x10000
		clusterName  uint32 = 0x03010001
		dbClusters   uint32 = 0x06000001
	)
	m := NewMockNative()
	m.RegisterClass(classCluster, MockClass{NameProp: clusterName, ListProp: dbClusters})

	db, code := m.DbOpenDatabase("example")
	require.Equal(t, status.Success, code)
	again, code := m.DbOpenDatabase("example")
	require.Equal(t, status.Success, code)
	require.Equal(t, db, again)
	require.Equal(t, 2, m.OpenDatabases())

	c1, code := m.DbCreateObject(db, classCluster, "CAN_A")
	require.Equal(t, status.Success, code)
	c2, code := m.DbCreateObject(db, classCluster, "CAN_B")
	require.Equal(t, status.Success, code)
	_, code = m.DbCreateObject(db, classCluster, "CAN_A")
	require.Equal(t, status.CodeDatabaseDuplicateName, code)

	list, ok := m.DbProp(db, dbClusters)
	require.True(t, ok)
	require.Equal(t, refBytes([]Handle{c1, c2}), list)

	name, ok := m.DbProp(c2, clusterName)
	require.True(t, ok)
	require.Equal(t, []byte("CAN_B\x00"), name)

	found, code := m.DbFindObject(db, classCluster, "CAN_B")
	require.Equal(t, status.Success, code)
	require.Equal(t, c2, found)

	require.Equal(t, status.Success, m.DbDeleteObject(c1))
	list, _ = m.DbProp(db, dbClusters)
	require.Equal(t, refBytes([]Handle{c2}), list)
	_, code = m.DbFindObject(db, classCluster, "CAN_A")
	require.Equal(t, status.CodeDatabaseObjectNotFound, code)

	require.Equal(t, status.Success, m.DbCloseDatabase(db, false))
	require.Equal(t, 1, m.OpenDatabases())
	require.Equal(t, status.Success, m.DbCloseDatabase(db, true))
	require.Equal(t, 0, m.OpenDatabases())
	require.Equal(t, status.CodeInvalidDatabaseHandle, m.DbCloseDatabase(db, false))
}

func TestMockAliasList(t *testing.T) {
	m := NewMockNative()
	require.Equal(t, status.Success, m.DbAddAlias64("b", `C:\b.dbc`, 500000))
	require.Equal(t, status.Success, m.DbAddAlias64("a", `C:\a.xml`, 0))

	as, ps, code := m.DbGetDatabaseListSizes("")
	require.Equal(t, status.Success, code)

	aliases, paths := make([]byte, as), make([]byte, ps)
	n, code := m.DbGetDatabaseList("", aliases, paths)
	require.Equal(t, status.Success, code)
	require.Equal(t, uint32(2), n)
	gotAliases, err := GoString(aliases)
	require.NoError(t, err)
	require.Equal(t, "a,b", gotAliases)
	gotPaths, err := GoString(paths)
	require.NoError(t, err)
	require.Equal(t, `C:\a.xml,C:\b.dbc`, gotPaths)

	require.Equal(t, status.Success, m.DbRemoveAlias("a"))
	require.Equal(t, status.CodeDatabaseAliasNotFound, m.DbRemoveAlias("a"))
}

func TestMockStatusToString(t *testing.T) {
	m := NewMockNative()
	m.SetMessage(status.CodeTimeout, "Timeout expired")

	buf := make([]byte, 32)
	m.StatusToString(status.CodeTimeout, buf)
	msg, err := GoString(buf)
	require.NoError(t, err)
	require.Equal(t, "Timeout expired", msg)

	small := make([]byte, 4)
	m.StatusToString(status.CodeTimeout, small)
	truncated, err := GoString(small)
	require.NoError(t, err)
	require.Equal(t, "Time", truncated)
}
