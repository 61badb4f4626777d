package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
)

// DBHandler is an slog.Handler that batches ERROR+ records into system_logs.
// Attributes added through WithAttrs are kept on every record it writes.
type DBHandler struct {
	sink  *sink
	attrs []slog.Attr
}

type sink struct {
	db      *gorm.DB
	mu      sync.Mutex
	buffer  []models.SystemLog
	stopped bool
	ticker  *time.Ticker
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	s := &sink{
		db:     db,
		buffer: make([]models.SystemLog, 0, batchSize),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.flushLoop()
	return &DBHandler{sink: s}
}

func (s *sink) flushLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ticker.C:
			s.flush()
		case <-s.done:
			s.flush()
			return
		}
	}
}

func (s *sink) flush() {
	s.mu.Lock()
	if len(s.buffer) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.buffer
	s.buffer = make([]models.SystemLog, 0, batchSize)
	s.mu.Unlock()

	s.write(batch)
}

func (s *sink) write(batch []models.SystemLog) {
	// Reporting through slog here would loop back into this handler.
	if err := s.db.CreateInBatches(batch, batchSize).Error; err != nil {
		slog.New(NewStdoutHandler(slog.LevelError)).Error("failed to flush system logs to DB", "error", err, "count", len(batch))
	}
}

// add buffers entry. A full buffer is flushed in the background; once the
// sink is stopped entries are written straight through.
func (s *sink) add(entry models.SystemLog) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		s.write([]models.SystemLog{entry})
		return
	}
	s.buffer = append(s.buffer, entry)
	full := len(s.buffer) >= batchSize
	if full {
		s.wg.Add(1)
	}
	s.mu.Unlock()

	if full {
		go func() {
			defer s.wg.Done()
			s.flush()
		}()
	}
}

// Stop flushes what is buffered, ends the flush loop, and waits for any
// background flush still running. Later records are written synchronously.
func (h *DBHandler) Stop() {
	s := h.sink
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.ticker.Stop()
	close(s.done)
	s.wg.Wait()
}

// Flush writes buffered records immediately.
func (h *DBHandler) Flush() {
	h.sink.flush()
}

// Enabled only handles ERROR and above.
func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "username":
			s := a.Value.String()
			entry.Username = &s
		case "method":
			entry.Method = a.Value.String()
		case "path":
			entry.Path = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Resolve().Any()
		}
		return true
	}
	for _, a := range h.attrs {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.sink.add(entry)
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &DBHandler{sink: h.sink, attrs: merged}
}

// WithGroup is a no-op: system_logs stores a flat attribute set.
func (h *DBHandler) WithGroup(name string) slog.Handler {
	return h
}
