// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/p3psi-boo/focalboard-mcp/internal/logger"
)

// sessionHeader carries the session identifier on every request after
// initialize.
const sessionHeader = "Mcp-Session-Id"

// HTTPTransport serves the protocol over HTTP. Each initialize request
// opens a session identified by a generated ID that the client echoes in
// the Mcp-Session-Id header; a DELETE on the endpoint closes it.
type HTTPTransport struct {
	server *Server
	path   string
	logger *logger.Logger

	mu       sync.Mutex
	sessions map[string]struct{}

	httpServer *http.Server
}

// NewHTTPTransport binds the server to the given endpoint path.
func NewHTTPTransport(server *Server, port int, path string, log *logger.Logger) *HTTPTransport {
	t := &HTTPTransport{
		server:   server,
		path:     path,
		logger:   log,
		sessions: map[string]struct{}{},
	}
	t.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: t.Init(),
	}
	return t
}

// Init assembles the router. Exposed separately so tests can drive the
// handler without a listener.
func (t *HTTPTransport) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(t.withLogging)

	router.Post(t.path, t.handlePost)
	router.Get(t.path, t.handleGet)
	router.Delete(t.path, t.handleDelete)

	return router
}

// RunServer blocks serving requests until Shutdown is called.
func (t *HTTPTransport) RunServer() error {
	t.logger.Info().Str("addr", t.httpServer.Addr).Str("path", t.path).Msg("serving HTTP transport")
	if err := t.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP transport ListenAndServe: %w", err)
	}
	return nil
}

// Shutdown stops the listener and drains in-flight requests.
func (t *HTTPTransport) Shutdown(ctx context.Context) error {
	return t.httpServer.Shutdown(ctx)
}

func (t *HTTPTransport) handlePost(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.writeResponse(w, http.StatusBadRequest, newErrorResponse(nil, codeParseError, "parse error"))
		return
	}

	if req.Method == "initialize" {
		sessionID := uuid.NewString()
		t.mu.Lock()
		t.sessions[sessionID] = struct{}{}
		t.mu.Unlock()

		logger.FromRequest(r).Info().Str("session", sessionID).Msg("session opened")

		w.Header().Set(sessionHeader, sessionID)
		t.writeResponse(w, http.StatusOK, t.server.Handle(r.Context(), &req))
		return
	}

	if !t.hasSession(r.Header.Get(sessionHeader)) {
		t.writeResponse(w, http.StatusBadRequest, newErrorResponse(req.ID, codeSessionError, "Session not found"))
		return
	}

	resp := t.server.Handle(r.Context(), &req)
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	t.writeResponse(w, http.StatusOK, resp)
}

// handleGet exists for clients probing for a server-to-client event
// stream; this server does not push messages, so an established session
// gets 405 and anything else the usual session error.
func (t *HTTPTransport) handleGet(w http.ResponseWriter, r *http.Request) {
	if !t.hasSession(r.Header.Get(sessionHeader)) {
		t.writeResponse(w, http.StatusBadRequest, newErrorResponse(nil, codeSessionError, "Session not found"))
		return
	}
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func (t *HTTPTransport) handleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(sessionHeader)

	t.mu.Lock()
	_, ok := t.sessions[sessionID]
	if ok {
		delete(t.sessions, sessionID)
	}
	t.mu.Unlock()

	if !ok {
		t.writeResponse(w, http.StatusNotFound, newErrorResponse(nil, codeSessionError, "Session not found"))
		return
	}

	logger.FromRequest(r).Info().Str("session", sessionID).Msg("session closed")
	w.WriteHeader(http.StatusOK)
}

func (t *HTTPTransport) hasSession(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sessions[sessionID]
	return ok
}

func (t *HTTPTransport) writeResponse(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.logger.Warn().Err(err).Msg("writing response")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (t *HTTPTransport) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		reqLog := t.logger.With().Str("remote", r.RemoteAddr).Logger()
		r = r.WithContext(reqLog.WithContext(r.Context()))

		lw := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		reqLog.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
