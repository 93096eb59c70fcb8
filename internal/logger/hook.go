package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để request không phải chờ I/O.
// Entry được đẩy vào channel buffer và một goroutine riêng ghi ra các writers.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// defaultHookBuffer là số entry tối đa chờ ghi trước khi hook bắt đầu bỏ bớt.
const defaultHookBuffer = 1000

// NewAsyncHookWithWriters tạo async hook ghi ra nhiều writers (file, stdout, ...).
// bufferSize <= 0 dùng defaultHookBuffer.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = defaultHookBuffer
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.drain()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// formatEntry đổi entry thành bytes bằng formatter của logger,
// fallback sang String() khi logger không có formatter.
func formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Fire nhận entry mới từ logrus. Không block: channel đầy thì bỏ entry,
// hook đã đóng thì ghi thẳng ra writers.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		data, err := formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy — bỏ entry này. Không được log ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

// drain ghi lần lượt các entry trong channel ra tất cả writers.
// Một writer lỗi không chặn các writers còn lại.
func (h *AsyncHook) drain() {
	defer h.wg.Done()

	for entry := range h.entries {
		data, err := formatEntry(entry)
		if err != nil {
			continue
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
	}
}

// Close đóng hook và đợi các entry còn lại được ghi xong.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
