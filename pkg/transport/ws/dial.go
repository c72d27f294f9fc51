// Package ws connects the serial link over a websocket.
package ws

import "golang.org/x/net/websocket"

// Dial connects to a websocket endpoint and returns the conn, which is
// an io.ReadWriter ready for transport.NewPort.
func Dial(url string) (*websocket.Conn, error) {
	conf, err := websocket.NewConfig(url, url)
	if err != nil {
		return nil, err
	}
	conf.Protocol = []string{"seabattle"}
	return websocket.DialConfig(conf)
}
