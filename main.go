package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/config"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/export"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/languageServer"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/util"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/webserver"
)

func main() {
	conf, err := config.Load("")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	util.LoggingEnabled = conf.Logging

	if len(os.Args) >= 2 && os.Args[1] == "languageServer" {
		if len(os.Args) >= 3 && os.Args[2] == "debug" {
			util.LoggingEnabled = true
		}
		languageServer.ListenAndServe(conf.AssemblerConfig())
	} else if len(os.Args) >= 3 && os.Args[1] == "assemble" {
		os.Exit(runAssemble(conf, os.Args[2], os.Args[3:], os.Stdin, os.Stdout, os.Stderr))
	} else if len(os.Args) == 2 && os.Args[1] == "serve" {
		log.Fatal(webserver.RunWebserver(conf.WebAddr, conf.AssemblerConfig()))
	} else if len(os.Args) == 1 {
		// run as language server but in tcp mode so it can be remotely debugged
		log.Fatal(languageServer.ListenAndServeTCP(conf.LanguageServerAddr, conf.AssemblerConfig()))
	} else {
		log.Fatalln("Invalid arguments:", os.Args)
	}
}

// runAssemble handles "assemble <file|-> [hex|mif|json] [outFile] [debug]" and
// returns the exit status
func runAssemble(conf *config.Config, filePath string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	format, err := export.ParseFormat(conf.OutputFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid output format in config: %v\n", err)
		return 2
	}
	asmConfig := conf.AssemblerConfig()
	outPath := ""

	for _, arg := range args {
		if arg == "debug" {
			asmConfig.DebugPadding = true
		} else if f, err := export.ParseFormat(arg); err == nil {
			format = f
		} else {
			outPath = arg
		}
	}

	source, err := readSource(filePath, stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Could not read file %s: %v\n", filePath, err)
		return 2
	}

	result := assembler.Assemble(string(source), asmConfig)
	reportDiagnostics(stderr, result.Diagnostics)

	out := stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(stderr, "Could not create %s: %v\n", outPath, err)
			return 2
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, format, result.HexWords(), result.Diagnostics); err != nil {
		fmt.Fprintf(stderr, "Could not write %s output: %v\n", format, err)
		return 2
	}
	if outPath == "" && format == export.FormatHex && len(result.Words) > 0 && isTerminal(stdout) {
		fmt.Fprintln(stdout)
	}

	if len(result.Diagnostics) > 0 {
		return 1
	}
	return 0
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readSource(filePath string, stdin io.Reader, stderr io.Writer) ([]byte, error) {
	if filePath != "-" {
		return os.ReadFile(filePath)
	}
	if isTerminal(stdin) {
		fmt.Fprintln(stderr, "Enter RV32I assembly, end with Ctrl-D:")
	}
	return io.ReadAll(stdin)
}

func reportDiagnostics(w io.Writer, diagnostics []assembler.Diagnostic) {
	colour := isTerminal(w)
	for _, d := range diagnostics {
		if colour {
			fmt.Fprintf(w, "\x1b[31mLine %d Error:\x1b[0m %s\n", d.Line, d.Message)
		} else {
			fmt.Fprintf(w, "Line %d Error: %s\n", d.Line, d.Message)
		}
	}
}
