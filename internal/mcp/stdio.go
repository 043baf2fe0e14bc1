// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/p3psi-boo/focalboard-mcp/internal/logger"
)

// maxLineBytes bounds a single framed message on the stdio stream.
const maxLineBytes = 4 * 1024 * 1024

// StdioTransport serves one logical connection over a pair of streams,
// one JSON-RPC message per line. Requests are handled sequentially in
// arrival order.
type StdioTransport struct {
	server *Server
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// NewStdioTransport wires the server to the given streams. The caller
// keeps any other output away from out, which carries protocol frames
// exclusively.
func NewStdioTransport(server *Server, in io.Reader, out io.Writer, log *logger.Logger) *StdioTransport {
	return &StdioTransport{server: server, in: in, out: out, logger: log}
}

// Run reads messages until the input stream closes or the context is
// cancelled.
func (t *StdioTransport) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	scanner := bufio.NewScanner(t.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	writer := bufio.NewWriter(t.out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if err := t.write(writer, newErrorResponse(nil, codeParseError, "parse error")); err != nil {
				return err
			}
			continue
		}

		resp := t.server.Handle(ctx, &req)
		if resp == nil {
			continue
		}
		if err := t.write(writer, resp); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdio stream: %w", err)
	}

	t.logger.Info().Msg("stdio stream closed")
	return nil
}

func (t *StdioTransport) write(w *bufio.Writer, resp *Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return w.Flush()
}
