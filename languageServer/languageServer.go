package languageServer

import (
	"context"
	"io"
	"log"
	"net"
	"os"
	"sync"

	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/util"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// server holds the open documents of a single client connection
type server struct {
	mu        sync.Mutex
	documents map[string]TextDocumentItem
	config    assembler.AssemblerConfig
}

func newServer(config assembler.AssemblerConfig) *server {
	return &server{
		documents: make(map[string]TextDocumentItem),
		config:    config,
	}
}

// ServeConn speaks the language server protocol over rwc until the client disconnects
func ServeConn(ctx context.Context, rwc io.ReadWriteCloser, config assembler.AssemblerConfig) *jsonrpc2.Conn {
	s := newServer(config)
	return jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), s)
}

func ListenAndServe(config assembler.AssemblerConfig) {
	// using stdin and stdout
	<-ServeConn(context.Background(), stdrwc{}, config).DisconnectNotify()
}

func ListenAndServeTCP(addr string, config assembler.AssemblerConfig) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Println("RV32I Language Server: listening for TCP connections on", addr)

	connectionCount := 0

	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		connectionCount = connectionCount + 1
		connectionID := connectionCount
		log.Printf("RV32I Language Server: received incoming connection #%d\n", connectionID)
		jsonrpc2Connection := ServeConn(context.Background(), conn, config)
		go func() {
			<-jsonrpc2Connection.DisconnectNotify()
			log.Printf("RV32I Language Server: connection #%d closed\n", connectionID)
		}()
	}
}

func (s *server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF("RV32I Language Server: received request: %s", req.Method)
	switch req.Method {
	case "textDocument/didOpen":
		s.documentOpenNotification(conn, req)
	case "textDocument/didClose":
		s.documentCloseNotification(conn, req)
	case "textDocument/didChange":
		s.documentChangeNotification(conn, req)
	case "initialize":
		handleInitialize(conn, req)
	case "initialized":
		// nothing to do
	case "textDocument/diagnostic":
		s.documentDiagnostics(conn, req)
	case "textDocument/willSaveWaitUntil":
		s.documentWillSaveWaitUntil(conn, req)
	case "textDocument/hover":
		s.hoverRequest(conn, req)

	// quitting
	case "shutdown":
		conn.Reply(context.Background(), req.ID, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			rpcErr := jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound}
			rpcErr.SetError("method not supported: " + req.Method)
			conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		}
	}
}

func handleInitialize(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := InitializeParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	conn.Reply(context.Background(), req.ID, result)

	registerRemainingCapabilities(conn)
}

func registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	// textDocumentSync.willSaveWaitUntil has to be registered dynamically
	util.LogF("RV32I Language Server: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "textDocumentSync.willSaveWaitUntil",
				Method: "textDocument/willSaveWaitUntil",
				RegisterOptions: TextDocumentRegistrationOptions{
					DocumentSelector: []DocumentFilter{
						{
							Scheme:   "file",
							Language: "riscv",
						},
					},
				},
			},
		},
	}

	go conn.Call(context.Background(), "client/registerCapability", params, nil)
}
