package main

import (
	"flag"
	"io"
	"net"
	"strings"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"

	"github.com/robotalks/seabattle/pkg/engine"
	fx "github.com/robotalks/seabattle/pkg/framework"
	"github.com/robotalks/seabattle/pkg/transport"
	"github.com/robotalks/seabattle/pkg/transport/mqtt"
	"github.com/robotalks/seabattle/pkg/transport/ws"
)

var (
	listenAddr  = flag.String("listen", "", "Wait for the peer on this TCP address.")
	connectAddr = flag.String("connect", "", "Connect to the peer at this TCP address.")
	wsURL       = flag.String("ws", "", "Connect the link over this websocket URL.")
	mqttURL     = flag.String("mqtt", "", "Bridge the link over this MQTT broker URL.")
	mqttRx      = flag.String("mqtt-rx", "seabattle/rx", "Topic carrying peer lines.")
	mqttTx      = flag.String("mqtt-tx", "seabattle/tx", "Topic carrying own lines.")
	seed        = flag.Int64("seed", 0, "Ship placement seed, 0 seeds from the clock.")
)

func main() {
	flag.Parse()

	var rw io.ReadWriter
	var extra []fx.Runnable

	switch {
	case *listenAddr != "":
		ln, err := net.Listen("tcp", *listenAddr)
		if err != nil {
			glog.Exit(err)
		}
		glog.Infof("waiting for peer on %s", *listenAddr)
		conn, err := ln.Accept()
		ln.Close()
		if err != nil {
			glog.Exit(err)
		}
		glog.Infof("peer connected from %s", conn.RemoteAddr())
		rw = conn
	case *connectAddr != "":
		conn, err := net.Dial("tcp", *connectAddr)
		if err != nil {
			glog.Exit(err)
		}
		rw = conn
	case *wsURL != "":
		conn, err := ws.Dial(*wsURL)
		if err != nil {
			glog.Exit(err)
		}
		rw = conn
	case *mqttURL != "":
		opts, prefix, err := mqtt.ClientOptionsFromURL(*mqttURL)
		if err != nil {
			glog.Exit(err)
		}
		if !strings.Contains(*mqttURL, "client-id=") {
			opts.SetClientID(sessionID())
		}
		q := mqtt.NewQueue(opts, prefix)
		if err := q.Connect(); err != nil {
			glog.Exit(err)
		}
		defer q.Close()
		link := mqtt.NewLink(q, *mqttRx, *mqttTx)
		extra = append(extra, fx.NamedRun("mqtt-link", link))
		rw = link
	default:
		glog.Exit("one of -listen, -connect, -ws, -mqtt is required")
	}

	port := transport.NewPort(rw, nil)
	eng := engine.New(port)
	if *seed != 0 {
		eng.WithSeed(*seed)
	}
	port.Receiver = eng.Receive

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("engine", eng), fx.NamedRun("port", port))
	runner.Go(extra...)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}

// sessionID derives a stable MQTT client id from the machine identity.
func sessionID() string {
	id, err := machineid.ProtectedID("seabattle")
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return "seabattle"
	}
	if len(id) > 12 {
		id = id[:12]
	}
	return "seabattle-" + id
}
