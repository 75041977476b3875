package webserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/export"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/util"
)

type request struct {
	Type   string   `json:"type"`
	Source string   `json:"source"`
	Debug  bool     `json:"debug"`
	Format string   `json:"format"`
	Words  []string `json:"words"`
}

type resultMessage struct {
	Type        string                 `json:"type"`
	Words       []string               `json:"words"`
	Diagnostics []assembler.Diagnostic `json:"diagnostics"`
}

type exportMessage struct {
	Type     string `json:"type"`
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type errorMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewHandler serves the editor page on / and the assembler websocket on /ws.
// The debug checkbox on the page overrides the configured padding per request.
func NewHandler(config assembler.AssemblerConfig) http.Handler {
	var upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		defer conn.Close()

		for {
			_, messageBytes, err := conn.ReadMessage()
			if err != nil {
				util.LogF("read: %v", err)
				return
			}

			if err := conn.WriteJSON(handleMessage(messageBytes, config)); err != nil {
				log.Println("write:", err)
				return
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler)
	mux.HandleFunc("/", handleGetPage)
	return mux
}

func handleMessage(messageBytes []byte, config assembler.AssemblerConfig) interface{} {
	message := request{}
	if err := json.Unmarshal(messageBytes, &message); err != nil {
		return errorMessage{Type: "error", Text: "invalid message: " + err.Error()}
	}

	switch message.Type {
	case "assemble":
		requestConfig := config
		requestConfig.DebugPadding = config.DebugPadding || message.Debug
		result := assembler.Assemble(message.Source, requestConfig)
		util.LogF("assembled %d words with %d diagnostics", len(result.Words), len(result.Diagnostics))
		return resultMessage{
			Type:        "result",
			Words:       result.HexWords(),
			Diagnostics: result.Diagnostics,
		}
	case "export":
		format, err := export.ParseFormat(message.Format)
		if err != nil {
			return errorMessage{Type: "error", Text: err.Error()}
		}
		content, err := export.Render(format, message.Words, nil)
		if err != nil {
			return errorMessage{Type: "error", Text: err.Error()}
		}
		return exportMessage{
			Type:     "export",
			Format:   string(format),
			Filename: export.FileName(format),
			Content:  content,
		}
	default:
		return errorMessage{Type: "error", Text: "Unknown message type: " + message.Type}
	}
}

func RunWebserver(addr string, config assembler.AssemblerConfig) error {
	log.Println("Connect to the assembler at http://localhost" + addr)
	return http.ListenAndServe(addr, NewHandler(config))
}

func handleGetPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(htmlPage))
}

var htmlPage = `<html>
<head>
	<title>RV32I Assembler</title>
</head>
<body style="background-color: #1E1E1E;">
	<h1 style="color: white; display: inline-block;">RV32I Assembler</h1>
	<button id="assembleButton" style="margin-left: 50px; height: 40px; width: 100px;">ASSEMBLE</button>
	<label style="color: white; margin-left: 20px;"><input type="checkbox" id="debug"/> debug padding</label>
	<button id="hexButton" style="margin-left: 20px; height: 40px;">Download .hex</button>
	<button id="mifButton" style="height: 40px;">Download .mif</button>
	<br/>
	<textarea id="source" spellcheck="false" style="width: 1000px; height: 400px; margin-top: 10px; font-family: monospace; font-size: 1.1em; background-color: black; color: white; border: 2px solid white;"></textarea>
	<h2 style="color: white;">Output</h2>
	<div style="width: 980px; padding: 10px; color: white; font-size: 1.2em; font-family: monospace; background-color: black; height: 300px; overflow-y: auto; border: 2px solid white;" id="output"></div>

	<script>
		var socket = new WebSocket("ws://" + window.location.host + "/ws");
		var words = [];

		socket.onmessage = function(event) {
			var data = JSON.parse(event.data);
			var output = document.getElementById("output");
			if (data.type == "result") {
				words = data.words;
				output.replaceChildren();
				for (var i = 0; i < data.diagnostics.length; i++) {
					appendLine(output, "Line " + data.diagnostics[i].line + " Error: " + data.diagnostics[i].message, "#F48771");
				}
				for (var i = 0; i < words.length; i++) {
					appendLine(output, words[i], "white");
				}
			} else if (data.type == "export") {
				var link = document.createElement("a");
				link.href = URL.createObjectURL(new Blob([data.content], {type: "text/plain"}));
				link.download = data.filename;
				link.click();
			} else if (data.type == "error") {
				output.replaceChildren();
				appendLine(output, data.text, "#F48771");
			}
		};

		// message text is never parsed as markup
		function appendLine(parent, text, colour) {
			var line = document.createElement("div");
			line.style.color = colour;
			line.textContent = text;
			parent.appendChild(line);
		}

		document.getElementById("assembleButton").onclick = function() {
			socket.send(JSON.stringify({
				type: "assemble",
				source: document.getElementById("source").value,
				debug: document.getElementById("debug").checked
			}));
		};

		document.getElementById("hexButton").onclick = function() {
			socket.send(JSON.stringify({type: "export", format: "hex", words: words}));
		};

		document.getElementById("mifButton").onclick = function() {
			socket.send(JSON.stringify({type: "export", format: "mif", words: words}));
		};
	</script>
</body>
</html>`
