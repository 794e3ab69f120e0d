package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"gomoku/engine"
)

type ghostCell struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Side int `json:"side"`
}

// ghostPayload previews the engine's reasoning: the chosen cell, the rule
// that produced it and, for positional moves, every tied cell.
type ghostPayload struct {
	Mode       string      `json:"mode,omitempty"`
	Rule       string      `json:"rule,omitempty"`
	Best       *ghostCell  `json:"best,omitempty"`
	Candidates []ghostCell `json:"candidates,omitempty"`
	Score      int         `json:"score,omitempty"`
	Active     bool        `json:"active"`
}

type GhostClient struct {
	hub  *GhostHub
	conn *websocket.Conn
	send chan []byte
}

type GhostHub struct {
	mu        sync.Mutex
	clients   map[*GhostClient]struct{}
	broadcast chan ghostPayload
}

func NewGhostHub() *GhostHub {
	return &GhostHub{
		clients:   make(map[*GhostClient]struct{}),
		broadcast: make(chan ghostPayload, 32),
	}
}

func (h *GhostHub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				client.sendJSON(wsMessage{Type: "ghost", Payload: mustMarshal(payload)})
			}
			h.mu.Unlock()
		}
	}
}

func (h *GhostHub) Register(c *GhostClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Publish drops the payload when the hub is backed up.
func (h *GhostHub) Publish(payload ghostPayload) {
	select {
	case h.broadcast <- payload:
	default:
	}
}

func (h *GhostHub) Unregister(c *GhostClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *GhostHub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *GhostClient) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func serveGhostWS(hub *GhostHub, w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &GhostClient{hub: hub, conn: conn, send: make(chan []byte, 16)}
	hub.Register(client)

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}

func ghostPayloadFromDecision(d engine.Decision) ghostPayload {
	payload := ghostPayload{Mode: "decision", Rule: string(d.Rule), Active: d.OK}
	if !d.OK {
		return payload
	}
	payload.Best = &ghostCell{Row: d.Move.Row, Col: d.Move.Col, Side: cellToInt(engine.CellEngine)}
	payload.Score = d.Score
	for _, m := range d.Candidates {
		payload.Candidates = append(payload.Candidates, ghostCell{Row: m.Row, Col: m.Col, Side: cellToInt(engine.CellEngine)})
	}
	return payload
}
