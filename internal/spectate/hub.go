package spectate

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoSession is returned when subscribing to a session that is not live.
var ErrNoSession = errors.New("spectate: no such session")

const defaultViewerBuffer = 16

// ChannelSession is one viewer's end of a live session: a buffered channel
// of encoded frames. When the viewer lags, the oldest frame is dropped.
type ChannelSession struct {
	id       SessionID
	frames   chan []byte
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSession creates a viewer channel holding up to size frames.
func NewChannelSession(id SessionID, size int) *ChannelSession {
	if size < 1 {
		size = defaultViewerBuffer
	}
	return &ChannelSession{
		id:     id,
		frames: make(chan []byte, size),
		done:   make(chan struct{}),
	}
}

// ID returns the watched session.
func (s *ChannelSession) ID() SessionID {
	return s.id
}

// Send queues a frame without blocking.
func (s *ChannelSession) Send(frame []byte) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.frames <- frame:
	default:
		select {
		case <-s.frames:
		default:
		}
		select {
		case s.frames <- frame:
		default:
		}
	}
}

// Frames returns the channel the viewer reads from.
func (s *ChannelSession) Frames() <-chan []byte {
	return s.frames
}

// Done is closed when the session ends or the viewer leaves.
func (s *ChannelSession) Done() <-chan struct{} {
	return s.done
}

// Close marks the viewer as gone. Safe to call multiple times.
func (s *ChannelSession) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// SessionInfo describes a live game for the session list.
type SessionInfo struct {
	ID      SessionID `json:"id"`
	User    string    `json:"user"`
	Mode    string    `json:"mode"`
	Started time.Time `json:"started"`
	Level   int       `json:"level"`
	Score   int       `json:"score"`
	Viewers int       `json:"viewers"`
}

type liveSession struct {
	info    SessionInfo
	last    []byte
	viewers map[*ChannelSession]struct{}
}

// Hub tracks live sessions and their viewers.
// Thread-safe for concurrent access.
type Hub struct {
	mu       sync.RWMutex
	sessions map[SessionID]*liveSession
	logger   *log.Logger
}

// NewHub creates an empty hub. A nil logger disables logging.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		sessions: make(map[SessionID]*liveSession),
		logger:   logger,
	}
}

func (h *Hub) log(msg string, keyvals ...any) {
	if h.logger != nil {
		h.logger.Info(msg, keyvals...)
	}
}

// Open registers a live session. Opening an existing id replaces its info
// and keeps its viewers.
func (h *Hub) Open(id SessionID, user, mode string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	info := SessionInfo{ID: id, User: user, Mode: mode, Started: time.Now()}
	if s, ok := h.sessions[id]; ok {
		s.info = info
		return
	}
	h.sessions[id] = &liveSession{info: info, viewers: make(map[*ChannelSession]struct{})}
	h.log("session opened", "session", id, "user", user, "mode", mode)
}

// Publish encodes the frame once and sends it to every viewer of its
// session. Frames for unknown sessions are dropped.
func (h *Hub) Publish(f Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[f.Session]
	if !ok {
		return nil
	}
	s.last = data
	s.info.Level = f.Level
	s.info.Score = f.Score
	for v := range s.viewers {
		v.Send(data)
	}
	return nil
}

// Subscribe attaches a viewer to a live session. The latest frame, if any,
// is queued right away. The returned function detaches the viewer.
func (h *Hub) Subscribe(id SessionID) (*ChannelSession, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, nil, ErrNoSession
	}
	v := NewChannelSession(id, defaultViewerBuffer)
	if s.last != nil {
		v.Send(s.last)
	}
	s.viewers[v] = struct{}{}
	h.log("viewer joined", "session", id, "viewers", len(s.viewers))

	return v, func() { h.unsubscribe(id, v) }, nil
}

func (h *Hub) unsubscribe(id SessionID, v *ChannelSession) {
	h.mu.Lock()
	defer h.mu.Unlock()

	v.Close()
	if s, ok := h.sessions[id]; ok {
		delete(s.viewers, v)
	}
}

// Close ends a live session and disconnects its viewers.
func (h *Hub) Close(id SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return
	}
	for v := range s.viewers {
		v.Close()
	}
	delete(h.sessions, id)
	h.log("session closed", "session", id)
}

// Sessions lists live sessions, oldest first.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	list := make([]SessionInfo, 0, len(h.sessions))
	for _, s := range h.sessions {
		info := s.info
		info.Viewers = len(s.viewers)
		list = append(list, info)
	}
	slices.SortFunc(list, func(a, b SessionInfo) int {
		if c := a.Started.Compare(b.Started); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return list
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
