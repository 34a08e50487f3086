package tui

import (
	"context"
	"fmt"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/websocket"

	"github.com/buswatch/buslights/internal/protocol"
)

type wsMessage struct {
	Data []byte
	Err  error
}

type connectionResult struct {
	Conn *websocket.Conn
	Err  error
}

func connect(host string) tea.Cmd {
	return func() tea.Msg {
		u := url.URL{Scheme: "ws", Host: host, Path: "/strand"}
		conn, _, err := websocket.Dial(context.Background(), u.String(), nil)
		if err != nil {
			return connectionResult{Err: fmt.Errorf("websocket connection failed: %s", err)}
		}
		conn.SetReadLimit(1 << 20)
		return connectionResult{Conn: conn}
	}
}

func listen(conn *websocket.Conn) tea.Cmd {
	return func() tea.Msg {
		_, data, err := conn.Read(context.Background())
		if err != nil {
			return wsMessage{Err: err}
		}
		return wsMessage{Data: data}
	}
}

func decodeSnapshot(data []byte) (protocol.Snapshot, error) {
	var snap protocol.Snapshot
	if err := snap.Decode(data); err != nil {
		return protocol.Snapshot{}, fmt.Errorf("failed to decode server message: %w", err)
	}
	return snap, nil
}
