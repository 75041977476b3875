package languageServer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/util"
)

// decodeParams replies with an invalid params error when it returns false
func decodeParams(conn *jsonrpc2.Conn, req *jsonrpc2.Request, v interface{}) bool {
	if req.Params != nil && json.Unmarshal(*req.Params, v) == nil {
		return true
	}

	rpcErr := jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	rpcErr.SetError("invalid parameters")
	conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
	return false
}

// toLSPDiagnostic spans the instruction text of the offending line, leaving out
// indentation and comments
func toLSPDiagnostic(d assembler.Diagnostic, lines []string) Diagnostic {
	line := d.Line - 1
	start, end := 0, 0
	if line >= 0 && line < len(lines) {
		text := splitComment(lines[line])
		trimmed := strings.TrimLeft(text, " \t")
		start = len(text) - len(trimmed)
		end = start + len(strings.TrimRight(trimmed, " \t\r"))
	}

	return Diagnostic{
		Range: TextRange{
			Start: TextPosition{Line: line, Char: start},
			End:   TextPosition{Line: line, Char: end},
		},
		Message:  d.Message,
		Source:   "Assembler",
		Code:     d.Kind.String(),
		Severity: Error,
	}
}

func (s *server) assembleAndReportDiagnostics(uri DocumentUri) []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.documents[string(uri)]
	assembledRes := assembler.Assemble(doc.Text, s.config)
	doc.lastAssembledResult = assembledRes
	s.documents[string(uri)] = doc

	lines := strings.Split(doc.Text, "\n")
	diagnostics := make([]Diagnostic, 0, len(assembledRes.Diagnostics))
	for _, d := range assembledRes.Diagnostics {
		diagnostics = append(diagnostics, toLSPDiagnostic(d, lines))
	}
	util.LogF("assembled %s: %d words, %d diagnostics", uri, len(assembledRes.Words), len(diagnostics))
	return diagnostics
}

func (s *server) documentOpenNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidOpenTextDocumentParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	s.mu.Lock()
	s.documents[string(decodedParams.TextDocument.URI)] = decodedParams.TextDocument
	s.mu.Unlock()

	diagnostics := s.assembleAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Version:     decodedParams.TextDocument.Version,
		Diagnostics: diagnostics,
	})
}

func (s *server) documentCloseNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidCloseTextDocumentParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	s.mu.Lock()
	delete(s.documents, string(decodedParams.TextDocument.URI))
	s.mu.Unlock()
}

func (s *server) documentChangeNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeTextDocumentParams{}
	if !decodeParams(conn, req, &decodedParams) || len(decodedParams.ContentChanges) == 0 {
		return
	}

	uri := decodedParams.TextDocument.URI
	s.mu.Lock()
	doc := s.documents[string(uri)]
	doc.URI = uri
	// only full document sync is registered, so the last change holds the whole text
	doc.Text = decodedParams.ContentChanges[len(decodedParams.ContentChanges)-1].Text
	doc.Version = decodedParams.TextDocument.Version
	s.documents[string(uri)] = doc
	s.mu.Unlock()

	diagnostics := s.assembleAndReportDiagnostics(uri)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.Version,
		Diagnostics: diagnostics,
	})
}

func (s *server) documentDiagnostics(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentDiagnosticsParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	diagnostics := s.assembleAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Reply(context.Background(), req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: diagnostics,
	})
}

// reformatDocument puts labels in the first column and indents everything else past
// the longest label. Instruction operands are rewritten as "op a, b, c".
func reformatDocument(text string) string {
	lines := strings.Split(text, "\n")

	maxLabelLength := 0
	for _, line := range lines {
		code := strings.TrimSpace(splitComment(line))
		if strings.HasSuffix(code, ":") && len(code)-1 > maxLabelLength {
			maxLabelLength = len(code) - 1
		}
	}
	indent := strings.Repeat(" ", maxLabelLength+2)

	for i, line := range lines {
		code := splitComment(line)
		comment := strings.TrimSpace(line[len(code):])
		code = strings.TrimSpace(code)

		switch {
		case code == "" && comment == "":
			lines[i] = ""
		case code == "":
			lines[i] = indent + comment
		case strings.HasSuffix(code, ":"):
			lines[i] = joinComment(code, comment)
		default:
			tokens := strings.Fields(strings.ReplaceAll(code, ",", " "))
			if len(tokens) == 0 {
				lines[i] = joinComment(indent+code, comment)
				continue
			}
			formatted := tokens[0]
			if len(tokens) > 1 {
				formatted += " " + strings.Join(tokens[1:], ", ")
			}
			lines[i] = joinComment(indent+formatted, comment)
		}
	}
	return strings.Join(lines, "\n")
}

// splitComment returns the part of the line before its comment marker
func splitComment(line string) string {
	cut := len(line)
	if i := strings.Index(line, "#"); i != -1 {
		cut = i
	}
	if i := strings.Index(line, "//"); i != -1 && i < cut {
		cut = i
	}
	return line[:cut]
}

func joinComment(code, comment string) string {
	if comment == "" {
		return code
	}
	return code + " " + comment
}

func (s *server) documentWillSaveWaitUntil(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentWillSaveWaitUntilParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	s.mu.Lock()
	text := s.documents[string(decodedParams.TextDocument.URI)].Text
	s.mu.Unlock()
	lines := strings.Split(text, "\n")

	edits := make([]TextEdit, 0)
	edits = append(edits, TextEdit{
		Range: TextRange{
			Start: TextPosition{Line: 0, Char: 0},
			End:   TextPosition{Line: len(lines) - 1, Char: len(lines[len(lines)-1])},
		},
		NewText: reformatDocument(text),
	})

	conn.Reply(context.Background(), req.ID, edits)
	util.LogF("reformatted %s", decodedParams.TextDocument.URI)
}
