// scripts/ws_listen.go
//
// Dev utility: subscribe to the realtime change feed and print every event.
//
//	go run scripts/ws_listen.go
//	go run scripts/ws_listen.go -addr localhost:5000
package main

import (
	"flag"
	"log"
	"net/url"

	"github.com/gorilla/websocket"
)

func main() {
	addr := flag.String("addr", "localhost:5000", "server host:port")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	log.Printf("connecting to %s", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for {
		var msg struct {
			Event string      `json:"event"`
			Data  interface{} `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Fatalf("read: %v", err)
		}
		log.Printf("%-18s %v", msg.Event, msg.Data)
	}
}
