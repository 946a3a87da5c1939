// Command vecsh evaluates vector expressions read line by line from stdin,
// locally or on a remote service, or serves the evaluator over WebSocket.
//
//	$ echo "add 1 2 3 4" | vecsh -kind i32
//	(4, 6)
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Yuni-sa/vector2-go/client"
	"github.com/Yuni-sa/vector2-go/internal/eval"
	"github.com/Yuni-sa/vector2-go/internal/server"
)

func main() {
	listen := flag.String("listen", "", "serve the evaluator over WebSocket on this address, e.g. :8080")
	connect := flag.String("connect", "", "evaluate on the service at this base URL, e.g. http://localhost:8080")
	kind := flag.String("kind", eval.DefaultKind, "component kind: "+strings.Join(eval.Kinds(), ", "))
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *listen != "" && *connect != "":
		log.Fatal("-listen and -connect cannot be combined")

	case *listen != "":
		srv, err := server.New(server.WithDefaultKind(*kind))
		if err != nil {
			log.Fatalf("Failed to create server: %v", err)
		}
		if err := srv.ListenAndServe(ctx, *listen); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case *connect != "":
		if err := runRemote(*connect, *kind); err != nil {
			log.Fatalf("Remote session failed: %v", err)
		}

	default:
		sess, err := eval.NewSession(*kind)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		if err := runREPL(os.Stdin, os.Stdout, sess.Eval); err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
	}
}

func runRemote(baseURL, kind string) error {
	conn, err := client.NewClientBuilder().
		WithBaseURL(baseURL).
		WithKind(kind).
		WithTimeout(30 * time.Second).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build client: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to ping service: %w", err)
	}
	log.Printf("service %s is up, requesting kind %q", conn.GetBaseURL(), conn.GetKind())

	ws, err := conn.Connect()
	if err != nil {
		return err
	}
	defer ws.GracefulClose()

	log.Printf("connected, session %s (kind %s)", ws.SessionID(), ws.Kind())
	return runREPL(os.Stdin, os.Stdout, ws.Eval)
}

// runREPL evaluates each input line with evalFn and writes one output line
// per expression. Blank lines and lines starting with '#' are skipped;
// "quit" or "exit" ends the loop.
func runREPL(in io.Reader, out io.Writer, evalFn func(string) (string, error)) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == "quit" || line == "exit":
			return nil
		}

		result, err := evalFn(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	return scanner.Err()
}
