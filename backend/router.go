package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gomoku/engine"
)

type StatusResponse struct {
	Settings        GameSettings      `json:"settings"`
	Config          Config            `json:"config"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	BoardSize       int               `json:"board_size"`
	Board           [][]int           `json:"board"`
	Status          string            `json:"status"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []engine.Move     `json:"winning_line"`
	EngineThinking  bool              `json:"engine_thinking"`
	LastMessage     string            `json:"last_message,omitempty"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type apiMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type historyEntryDTO struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Player     int     `json:"player"`
	ElapsedMs  float64 `json:"elapsed_ms"`
	IsEngine   bool    `json:"is_engine"`
	Rule       string  `json:"rule,omitempty"`
	Score      int     `json:"score,omitempty"`
	Candidates int     `json:"candidates,omitempty"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	Board           [][]int           `json:"board"`
	History         []historyEntryDTO `json:"history"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	BoardSize       int               `json:"board_size"`
	WinningLine     []engine.Move     `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettings `json:"settings"`
	Config   Config       `json:"config"`
}

func newRouter(controller *GameController, hub *Hub, ghostHub *GhostHub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettings `json:"settings"`
		}
		// An empty body restarts with the current settings.
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := controller.Settings()
		if payload.Settings != nil {
			settings = *payload.Settings
		}
		if err := settings.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.PublishReset(resetFromController(controller))
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.PublishReset(resetFromController(controller))
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettings `json:"settings"`
			Config   *Config       `json:"config"`
			Reset    bool          `json:"reset"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Settings != nil {
			if err := payload.Settings.Validate(); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			if ok, reason := controller.UpdateSettings(*payload.Settings, payload.Reset); !ok {
				writeJSON(w, http.StatusConflict, map[string]string{"error": reason})
				return
			}
		}
		if payload.Config != nil {
			cfg := GetConfig()
			// Listen address and tick rate are fixed for the process.
			cfg.GhostMode = payload.Config.GhostMode
			cfg.EngineDelayMs = payload.Config.EngineDelayMs
			configStore.Update(cfg)
			controller.SetEngineDelay(engineDelay(cfg))
		}
		hub.PublishSettings(settingsPayload{
			Settings: controller.Settings(),
			Config:   GetConfig(),
		})
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(engine.Move{Row: payload.Row, Col: payload.Col})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.PublishHistory(historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}})
		}
		hub.PublishStatus(controllerStatus(controller))
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})
	r.Get("/ws/ghost", func(w http.ResponseWriter, r *http.Request) {
		serveGhostWS(ghostHub, w, r)
	})
	return r
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		case "move":
			var move apiMove
			if err := json.Unmarshal(msg.Payload, &move); err != nil {
				continue
			}
			controller.OnCellClicked(move.Row, move.Col)
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	return StatusResponse{
		Settings:        controller.Settings(),
		Config:          GetConfig(),
		NextPlayer:      cellToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		BoardSize:       state.Board.Size(),
		Board:           boardToSlice(state.Board),
		Status:          statusToString(state.Status),
		History:         historyToDTO(controller.History()),
		WinningLine:     append([]engine.Move(nil), state.WinningLine...),
		EngineThinking:  controller.EngineThinking(),
		LastMessage:     state.LastMessage,
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		Board:           boardToSlice(state.Board),
		History:         historyToDTO(controller.History()),
		NextPlayer:      cellToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		BoardSize:       state.Board.Size(),
		WinningLine:     append([]engine.Move(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func boardToSlice(board engine.Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for row := 0; row < size; row++ {
		rows[row] = make([]int, size)
		for col := 0; col < size; col++ {
			rows[row][col] = cellToInt(board.At(row, col))
		}
	}
	return rows
}

func cellToInt(cell engine.Cell) int {
	switch cell {
	case engine.CellHuman:
		return 1
	case engine.CellEngine:
		return 2
	default:
		return 0
	}
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusHumanWon:
		return 1
	case StatusEngineWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusHumanWon:
		return "human_won"
	case StatusEngineWon:
		return "engine_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Row:        entry.Move.Row,
		Col:        entry.Move.Col,
		Player:     cellToInt(entry.Side),
		ElapsedMs:  entry.ElapsedMs,
		IsEngine:   entry.IsEngine,
		Rule:       string(entry.Rule),
		Score:      entry.Score,
		Candidates: entry.Candidates,
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
