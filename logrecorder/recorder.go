package logrecorder

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LoveWonYoung/nixnet/frames"
)

// NowString 返回 "20060102_1504" 格式的时间字符串
func NowString(t time.Time) string {
	return t.Format("20060102_1504")
}

// DirName 返回以日期命名的目录名（如：2025_04_25）
func DirName(t time.Time) string {
	return fmt.Sprintf("%d_%02d_%02d", t.Year(), t.Month(), t.Day())
}

// Options 配置记录器
type Options struct {
	// Dir 为根目录，记录文件写入其下按日期命名的子目录
	Dir string
	// Name 为文件名前缀
	Name string
	// Rotate 为轮换周期，0 表示不轮换
	Rotate time.Duration
	// Now 返回当前时间，默认 time.Now
	Now func() time.Time
}

// Recorder 把帧以 JSON 行的形式写入文件，按周期轮换
type Recorder struct {
	fs   billy.Filesystem
	opts Options

	mu     sync.Mutex
	file   billy.File
	logger *zap.Logger
	path   string
	opened time.Time
	count  uint64
}

// New 创建记录器并立即打开第一个文件
func New(fs billy.Filesystem, opts Options) (*Recorder, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	r := &Recorder{fs: fs, opts: opts}
	if err := r.open(opts.Now()); err != nil {
		return nil, err
	}
	return r, nil
}

// MakeDir 创建 t 当天的目录并返回其路径
func (r *Recorder) MakeDir(t time.Time) (string, error) {
	dir := path.Join(r.opts.Dir, DirName(t))
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建文件夹失败: %w", err)
	}
	return dir, nil
}

// open 必须在持有 r.mu 或初始化时调用
func (r *Recorder) open(now time.Time) error {
	dir, err := r.MakeDir(now)
	if err != nil {
		return err
	}
	p := path.Join(dir, fmt.Sprintf("%s%s.log", r.opts.Name, NowString(now)))
	f, err := r.fs.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %w", err)
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "logged"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel)

	if r.file != nil {
		r.logger.Sync()
		r.file.Close()
	}
	r.file = f
	r.logger = zap.New(core)
	r.path = p
	r.opened = now
	return nil
}

// Path 返回当前记录文件的路径
func (r *Recorder) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// Count 返回已记录的帧数
func (r *Recorder) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Record 写入一帧，到达轮换周期时先切换到新文件
func (r *Recorder) Record(f frames.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return os.ErrClosed
	}
	now := r.opts.Now()
	if r.opts.Rotate > 0 && now.Sub(r.opened) >= r.opts.Rotate {
		if err := r.open(now); err != nil {
			return fmt.Errorf("日志轮换失败: %w", err)
		}
	}
	dir := "RX"
	if f.Echo() {
		dir = "TX"
	}
	fields := []zap.Field{
		zap.String("dir", dir),
		zap.Stringer("type", f.Type),
		zap.String("id", fmt.Sprintf("0x%03X", f.ID())),
		zap.Bool("extended", f.Extended()),
		zap.Int("dlc", len(f.Payload)),
		zap.String("data", hex.EncodeToString(f.Payload)),
	}
	if f.Timestamp != 0 {
		fields = append(fields, zap.Time("ts", f.Time()))
	}
	r.logger.Info("frame", fields...)
	r.count++
	return nil
}

// Run 记录 ch 中的每一帧，直到 ch 关闭或 ctx 结束
func (r *Recorder) Run(ctx context.Context, ch <-chan frames.Frame) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-ch:
			if !ok {
				return nil
			}
			if err := r.Record(f); err != nil {
				return err
			}
		}
	}
}

// Close 刷新并关闭当前文件
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	r.logger.Sync()
	err := r.file.Close()
	r.file = nil
	return err
}
