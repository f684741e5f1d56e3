package live

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/groovehire/backend/internal/model/chat"
	chatservice "github.com/groovehire/backend/internal/service/chat"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
)

// Handler drives a conversation over a websocket: clients send text or
// quick replies and receive every log append and typing change.
type Handler struct {
	chatSvc  *chatservice.Service
	upgrader websocket.Upgrader
}

// New creates the websocket handler. An empty allowedOrigins accepts any origin.
func New(chatSvc *chatservice.Service, allowedOrigins []string) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/conversations/{conversationID}/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// textMessage carries a free-text submission.
type textMessage struct {
	Text string `json:"text"`
}

// quickReplyMessage carries a tapped quick-reply label.
type quickReplyMessage struct {
	Label string `json:"label"`
}

type outgoingMessage struct {
	Type           string      `json:"type"`
	ConversationID string      `json:"conversationId,omitempty"`
	Data           interface{} `json:"data,omitempty"`
	Timestamp      int64       `json:"timestamp"`
}

type ackPayload struct {
	Accepted bool        `json:"accepted"`
	Entry    *chat.Entry `json:"entry,omitempty"`
}

// client serialises writes; gorilla allows a single concurrent writer.
type client struct {
	conn           *websocket.Conn
	conversationID string
	logger         zerolog.Logger
	writeMu        sync.Mutex
}

func (c *client) send(msgType string, data interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(outgoingMessage{
		Type:           msgType,
		ConversationID: c.conversationID,
		Data:           data,
		Timestamp:      time.Now().Unix(),
	})
}

func (c *client) sendError(message string) {
	if err := c.send("error", map[string]string{"message": message}); err != nil {
		c.logger.Debug().Err(err).Msg("write error failed")
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	conv, err := h.chatSvc.Get(r.Context(), conversationID)
	if err != nil {
		if errors.Is(err, chatservice.ErrConversationNotFound) {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("component", "websocket").Msg("upgrade failed")
		return
	}
	defer conn.Close()

	c := &client{
		conn:           conn,
		conversationID: conversationID,
		logger:         log.With().Str("component", "websocket").Str("conv_id", conversationID).Logger(),
	}
	c.logger.Info().Msg("connection opened")
	defer c.logger.Info().Msg("connection closed")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, unsubscribe := conv.Subscribe()
	defer unsubscribe()

	if err := c.send("snapshot", conv.Snapshot()); err != nil {
		return
	}

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	go pingLoop(ctx, conn)
	go h.forwardEvents(ctx, cancel, c, events)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn().Err(err).Msg("read failed")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		h.handleMessage(c, conv, &msg)
	}
}

func (h *Handler) handleMessage(c *client, conv *chatservice.Conversation, msg *inboundMessage) {
	var (
		entry chat.Entry
		ok    bool
	)

	switch msg.Type {
	case "text":
		var text textMessage
		if err := json.Unmarshal(msg.Data, &text); err != nil {
			c.sendError("invalid text payload")
			return
		}
		entry, ok = conv.AppendUser(text.Text)
	case "quick_reply":
		var reply quickReplyMessage
		if err := json.Unmarshal(msg.Data, &reply); err != nil {
			c.sendError("invalid quick reply payload")
			return
		}
		entry, ok = conv.QuickReply(reply.Label)
	default:
		c.sendError("unsupported message type: " + msg.Type)
		return
	}

	ack := ackPayload{Accepted: ok}
	if ok {
		ack.Entry = &entry
	}
	if err := c.send("ack", ack); err != nil {
		c.logger.Debug().Err(err).Msg("write ack failed")
	}
}

// forwardEvents relays conversation events until the subscription ends,
// then closes the socket so the read loop exits.
func (h *Handler) forwardEvents(ctx context.Context, cancel context.CancelFunc, c *client, events <-chan chat.Event) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				c.writeMu.Lock()
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "conversation closed"),
					time.Now().Add(writeTimeout))
				c.writeMu.Unlock()
				_ = c.conn.Close()
				return
			}
			if err := c.send(string(event.Type), event); err != nil {
				c.logger.Debug().Err(err).Msg("write event failed")
				return
			}
		}
	}
}

func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
