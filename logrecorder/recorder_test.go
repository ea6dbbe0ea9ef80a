package logrecorder

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/frames"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func readLines(t *testing.T, fs billy.Filesystem, p string) []map[string]any {
	t.Helper()
	data, err := util.ReadFile(fs, p)
	require.NoError(t, err)
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestNames(t *testing.T) {
	at := time.Date(2025, 4, 5, 9, 7, 0, 0, time.Local)
	require.Equal(t, "2025_04_05", DirName(at))
	require.Equal(t, "20250405_0907", NowString(at))
}

func TestRecorder_Record(t *testing.T) {
	fs := memfs.New()
	c := &clock{t: time.Date(2025, 4, 25, 10, 30, 0, 0, time.Local)}
	r, err := New(fs, Options{Dir: "logs", Name: "bench", Now: c.now})
	require.NoError(t, err)
	require.Equal(t, "logs/2025_04_25/bench20250425_1030.log", r.Path())

	echo := frames.CAN(0x7E0, []byte{0x02, 0x10, 0x03})
	echo.Flags |= frames.FlagTransmitEcho
	require.NoError(t, r.Record(frames.CAN(0x123, []byte{1, 2, 3})))
	require.NoError(t, r.Record(echo))
	require.Equal(t, uint64(2), r.Count())
	require.NoError(t, r.Close())

	lines := readLines(t, fs, "logs/2025_04_25/bench20250425_1030.log")
	require.Len(t, lines, 2)
	require.Equal(t, "frame", lines[0]["msg"])
	require.Equal(t, "RX", lines[0]["dir"])
	require.Equal(t, "0x123", lines[0]["id"])
	require.Equal(t, "010203", lines[0]["data"])
	require.Equal(t, float64(3), lines[0]["dlc"])
	require.Equal(t, "CAN", lines[0]["type"])
	require.Equal(t, "TX", lines[1]["dir"])

	require.ErrorIs(t, r.Record(echo), os.ErrClosed)
	require.NoError(t, r.Close())
}

func TestRecorder_Rotate(t *testing.T) {
	fs := memfs.New()
	c := &clock{t: time.Date(2025, 4, 25, 23, 58, 0, 0, time.Local)}
	r, err := New(fs, Options{Dir: "logs", Name: "can", Rotate: 5 * time.Minute, Now: c.now})
	require.NoError(t, err)
	first := r.Path()

	require.NoError(t, r.Record(frames.CAN(0x1, nil)))
	c.t = c.t.Add(4 * time.Minute)
	require.NoError(t, r.Record(frames.CAN(0x2, nil)))
	require.Equal(t, first, r.Path())

	c.t = c.t.Add(time.Minute)
	require.NoError(t, r.Record(frames.CAN(0x3, nil)))
	second := r.Path()
	require.Equal(t, "logs/2025_04_26/can20250426_0003.log", second)
	require.NoError(t, r.Close())

	require.Len(t, readLines(t, fs, first), 2)
	require.Len(t, readLines(t, fs, second), 1)
}

func TestRecorder_Run(t *testing.T) {
	fs := memfs.New()
	r, err := New(fs, Options{Name: "run"})
	require.NoError(t, err)
	defer r.Close()

	ch := make(chan frames.Frame, 2)
	ch <- frames.CAN(0x10, []byte{1})
	ch <- frames.CAN(0x11, []byte{2})
	close(ch)
	require.NoError(t, r.Run(context.Background(), ch))
	require.Equal(t, uint64(2), r.Count())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, r.Run(ctx, make(chan frames.Frame)), context.Canceled)
}
