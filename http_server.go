package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/google/uuid"
)

type HTTPHandler struct {
	Engine *Engine
}

func NewHTTPServer(engine *Engine, config *Config) http.Handler {
	httpHandler := HTTPHandler{engine}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(config.RateLimitPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/"))

	r.Get("/ws", httpHandler.websocket())
	return r
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		defer conn.Close()

		handle := uuid.NewString()
		client := NewClientConn(conn)
		h.Engine.Connect(handle, client)
		logger := GetConnLogger(r.RemoteAddr, handle)
		logger.Connected()
		defer func() {
			h.Engine.RemoveConnection(handle)
			logger.Disconnected()
		}()

		for {
			msg, err := client.ReadEvent()
			if err != nil {
				if errors.Is(err, ErrUndefinedType) || errors.Is(err, ErrInvalidPayload) {
					logger.DroppedEvent(err)
					continue
				}
				break
			}
			switch m := msg.(type) {
			case JoinChatEvent:
				h.Engine.JoinChat(handle, m)
			case SendMessageEvent:
				h.Engine.SendMessage(handle, m)
			case TypingStartEvent:
				h.Engine.TypingStart(handle, m)
			case TypingStopEvent:
				h.Engine.TypingStop(handle, m)
			case DisconnectChatEvent:
				h.Engine.DisconnectChat(handle)
			}
		}
	}
}
