package channel

import (
	"context"

	"github.com/gorilla/websocket"
)

// WebsocketDialer adapts gorilla/websocket to the Dialer interface.
type WebsocketDialer struct{}

func NewWebsocketDialer() WebsocketDialer {
	return WebsocketDialer{}
}

func (WebsocketDialer) Dial(ctx context.Context, rawURL string) (Conn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}
