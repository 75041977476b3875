package languageServer

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
)

func (s *server) hoverRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	s.mu.Lock()
	doc, ok := s.documents[string(decodedParams.TextDocument.URI)]
	s.mu.Unlock()
	if !ok || doc.lastAssembledResult == nil {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	// protocol lines are zero based, assembler lines are not
	text, ok := doc.lastAssembledResult.EvaluateHover(decodedParams.Position.Line+1, decodedParams.Position.Char)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	conn.Reply(context.Background(), req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: text,
		},
	})
}
