package bus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoServer starts a bus that sends each frame it receives back to the
// sender, after first sending every frame in greet.
func echoServer(t *testing.T, greet ...string) string {
	t.Helper()
	up := ws.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, g := range greet {
			if err := conn.WriteMessage(ws.TextMessage, []byte(g)); err != nil {
				return
			}
		}
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(mt, data); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestRoundTrip(t *testing.T) {
	url := echoServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, Options{URL: url})
	require.NoError(t, err)
	defer c.Close()

	want := &Message{From: "mic", To: "vocal", Kind: KindTranscript, Content: "2 plus 3"}
	require.NoError(t, c.Write(want))
	got, err := c.Read()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadBadMessage(t *testing.T) {
	url := echoServer(t, "not json", `{"from":"mic","kind":"transcript","content":"1 plus 1"}`)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, Options{URL: url})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Read()
	var merr *MessageError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "not json", string(merr.Raw))

	m, err := c.Read()
	require.NoError(t, err, "connection should survive a bad frame")
	assert.Equal(t, "1 plus 1", m.Content)
}

func TestReconnect(t *testing.T) {
	url := echoServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, Options{URL: url})
	require.NoError(t, err)
	defer c.Close()

	first := c.current()
	require.NoError(t, c.Reconnect(ctx, 10*time.Millisecond))
	assert.NotSame(t, first, c.current())

	require.NoError(t, c.Write(&Message{Kind: KindTranscript, Content: "again"}))
	m, err := c.Read()
	require.NoError(t, err)
	assert.Equal(t, "again", m.Content)
}

func TestReconnectCanceled(t *testing.T) {
	url := echoServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, Options{URL: url})
	require.NoError(t, err)
	c.url = "ws://127.0.0.1:1/ws"

	rctx, rcancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer rcancel()
	err = c.Reconnect(rctx, 10*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDialFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Dial(ctx, Options{URL: "ws://127.0.0.1:1/ws"})
	assert.Error(t, err)
}

func TestDialProxyFails(t *testing.T) {
	url := echoServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Nothing listens on port 1, so the proxy connection is refused.
	_, err := Dial(ctx, Options{URL: url, Proxy: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestIsClosed(t *testing.T) {
	assert.True(t, IsClosed(&ws.CloseError{Code: ws.CloseNormalClosure}))
	assert.True(t, IsClosed(&ws.CloseError{Code: ws.CloseGoingAway}))
	assert.False(t, IsClosed(&ws.CloseError{Code: ws.CloseProtocolError}))
	assert.False(t, IsClosed(context.Canceled))
}
