package spectate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beast-arcade/internal/games/beast"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

func TestFrameFromEngine(t *testing.T) {
	e := beast.New(beast.Options{Seed: 3})
	f := NewFrame("s1", "alice", e)

	data, err := f.Encode()
	require.NoError(t, err)
	got, err := DecodeFrame(data)
	require.NoError(t, err)

	assert.Equal(t, f, got)
	assert.Equal(t, "intro", got.State)
	assert.Equal(t, board.Player, got.Tile(board.PlayerStart))
	assert.Equal(t, board.Empty, got.Tile(board.C(-1, 0)))
	assert.Equal(t, e.Footer().Remaining, got.RemainingTime())
}

func TestDecodeFrameRejectsGarbage(t *testing.T) {
	_, err := DecodeFrame([]byte{0xc1})
	assert.Error(t, err)
}

func TestChannelSessionDropsOldest(t *testing.T) {
	s := NewChannelSession("s", 2)
	s.Send([]byte("1"))
	s.Send([]byte("2"))
	s.Send([]byte("3"))

	assert.Equal(t, "2", string(<-s.Frames()))
	assert.Equal(t, "3", string(<-s.Frames()))

	s.Close()
	s.Close()
	s.Send([]byte("4"))
	assert.Empty(t, s.Frames())
}

func TestHubPublishAndSubscribe(t *testing.T) {
	h := NewHub(nil)
	_, _, err := h.Subscribe("missing")
	assert.ErrorIs(t, err, ErrNoSession)

	h.Open("s1", "alice", "beast")
	require.NoError(t, h.Publish(Frame{Session: "s1", Level: 2, Score: 9}))
	require.NoError(t, h.Publish(Frame{Session: "unknown"}))

	v, leave, err := h.Subscribe("s1")
	require.NoError(t, err)

	first, err := DecodeFrame(<-v.Frames())
	require.NoError(t, err)
	assert.Equal(t, 9, first.Score)

	list := h.Sessions()
	require.Len(t, list, 1)
	assert.Equal(t, SessionInfo{ID: "s1", User: "alice", Mode: "beast", Started: list[0].Started, Level: 2, Score: 9, Viewers: 1}, list[0])

	leave()
	assert.Zero(t, h.Sessions()[0].Viewers)

	v2, _, err := h.Subscribe("s1")
	require.NoError(t, err)
	h.Close("s1")
	assert.Zero(t, h.Count())
	select {
	case <-v2.Done():
	default:
		t.Fatal("viewer not closed with its session")
	}
}

func TestServerStreamsFrames(t *testing.T) {
	h := NewHub(nil)
	h.Open("s1", "alice", "beast_ranked")
	srv := httptest.NewServer(NewServer("", h, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions")
	require.NoError(t, err)
	var list []SessionInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, SessionID("s1"), list[0].ID)

	resp, err = http.Get(srv.URL + "/ws?session=nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?session=s1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return h.Sessions()[0].Viewers == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, h.Publish(Frame{Session: "s1", Level: 4}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, kind)
	f, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Level)

	h.Close("s1")
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
