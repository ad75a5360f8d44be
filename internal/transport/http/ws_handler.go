package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"scamslayer-service/internal/app"
	"scamslayer-service/internal/auth"
	"scamslayer-service/internal/domain"
)

// WSHandler drives one scenario run per WebSocket connection.
type WSHandler struct {
	games    *app.GameService
	secret   []byte
	upgrader websocket.Upgrader
}

func NewWSHandler(games *app.GameService, secret []byte) *WSHandler {
	return &WSHandler{
		games:  games,
		secret: secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Choice int `json:"choice"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// choiceView hides correctness and feedback until the round is answered.
type choiceView struct {
	Text string `json:"text"`
}

type roundPayload struct {
	Index   int          `json:"index"`
	Total   int          `json:"total"`
	Prompt  string       `json:"prompt"`
	Context string       `json:"context,omitempty"`
	Details []string     `json:"details,omitempty"`
	Hint    string       `json:"hint,omitempty"`
	Choices []choiceView `json:"choices"`
	Score   int          `json:"score"`
	Streak  int          `json:"streak"`
}

// ServeWS upgrades HTTP requests to websockets and plays a scenario run over
// them.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		http.Error(w, "missing gameId", http.StatusBadRequest)
		return
	}
	ident := auth.FromRequest(h.secret, r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	run, err := h.games.StartRun(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, domain.ErrNoRounds) {
			_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "empty", Payload: errorPayload{
				Message: "No rounds configured for this game yet. Check back soon!",
			}})
			return
		}
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Msg("ws write error")
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "round", Payload: roundView(run)}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid select payload"}}
				continue
			}
			outcome, err := run.Select(payload.Choice)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "outcome", Payload: outcome}

		case "advance":
			finished, err := run.Advance()
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			if !finished {
				send <- outboundMessage[any]{Type: "round", Payload: roundView(run)}
				continue
			}
			// Settlement is detached from the request context so the
			// reward write survives the client navigating away mid-save.
			summary, err := h.games.FinishRun(context.Background(), run, ident)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "summary", Payload: summary}

		case "restart":
			if _, ok := run.Result(); !ok {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "run still in progress"}}
				continue
			}
			run.Reset()
			send <- outboundMessage[any]{Type: "round", Payload: roundView(run)}

		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(send)
	<-writerDone
}

func roundView(run *app.Run) roundPayload {
	round, _ := run.CurrentRound()
	choices := make([]choiceView, 0, len(round.Choices))
	for _, c := range round.Choices {
		choices = append(choices, choiceView{Text: c.Text})
	}
	return roundPayload{
		Index:   run.RoundIndex(),
		Total:   run.TotalRounds(),
		Prompt:  round.Prompt,
		Context: round.Context,
		Details: round.Details,
		Hint:    round.Hint,
		Choices: choices,
		Score:   run.Score(),
		Streak:  run.Streak(),
	}
}
