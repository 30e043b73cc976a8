// Command server exposes the engine over HTTP and a websocket: POST
// /legal-moves lists pseudo-legal moves for a position, POST /search runs
// SearchMove and returns its chosen move, and GET /ws accepts the same
// search requests as newline-delimited JSON messages over a persistent
// connection.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"sixmate/board"
	"sixmate/engine"
)

const defaultPort = 8080

type client struct {
	conn *websocket.Conn
	app  *application
}

type application struct {
	router      *mux.Router
	clients     map[*client]struct{}
	clientsLock sync.RWMutex
	upgrader    websocket.Upgrader
}

func newApplication() *application {
	app := &application{
		router:  mux.NewRouter(),
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	app.router.Use(func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(os.Stdout, next)
	})
	app.router.HandleFunc("/legal-moves", app.legalMovesHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/search", app.searchHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/ws", app.wsHandler)
	return app
}

func (app *application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

type positionRequest struct {
	Board string `json:"board"`
}

type searchRequest struct {
	Board  string `json:"board"`
	Depth  int    `json:"depth"`
	Compat bool   `json:"compat"`
}

type searchResponse struct {
	Move  string `json:"move"`
	Mated bool   `json:"mated"`
	Error string `json:"error,omitempty"`
}

func parseBoard(notation string) (board.Board, error) {
	if notation == "" {
		return board.StartPosition(), nil
	}
	return board.Parse(notation)
}

func (app *application) legalMovesHandler(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b, err := parseBoard(req.Board)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ml, err := board.GenerateMoves(b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, struct {
		Moves []string `json:"moves"`
	}{ml.Strings()})
}

func (app *application) searchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, app.runSearch(req))
}

func (app *application) runSearch(req searchRequest) searchResponse {
	b, err := parseBoard(req.Board)
	if err != nil {
		return searchResponse{Error: err.Error()}
	}
	depth := req.Depth
	if depth < 3 {
		depth = 3
	}
	eval := engine.EvaluateMove
	if req.Compat {
		eval = engine.EvaluateMoveCorrected
	}
	m, mated, err := engine.SearchMoveWith(b, depth, eval)
	if err != nil {
		return searchResponse{Error: err.Error()}
	}
	return searchResponse{Move: m.String(), Mated: mated}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (app *application) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	c := &client{conn: conn, app: app}
	app.clientsLock.Lock()
	app.clients[c] = struct{}{}
	app.clientsLock.Unlock()

	for {
		var req searchRequest
		if err := conn.ReadJSON(&req); err != nil {
			app.clientsLock.Lock()
			delete(app.clients, c)
			app.clientsLock.Unlock()
			conn.Close()
			return
		}
		if err := app.streamSearch(conn, req); err != nil {
			app.clientsLock.Lock()
			delete(app.clients, c)
			app.clientsLock.Unlock()
			conn.Close()
			return
		}
	}
}

// moveScore is one line of a /ws stream: a single root move and its
// evaluate_move score, in the order the search visited it.
type moveScore struct {
	Move  string `json:"move"`
	Score int32  `json:"score"`
}

// streamSearch writes one JSON line per root move with its evaluate_move
// score as the search would visit it, then the final chosen move, letting
// a client watch move ordering live instead of only seeing the result.
func (app *application) streamSearch(conn *websocket.Conn, req searchRequest) error {
	b, err := parseBoard(req.Board)
	if err != nil {
		return conn.WriteJSON(searchResponse{Error: err.Error()})
	}
	eval := engine.EvaluateMove
	if req.Compat {
		eval = engine.EvaluateMoveCorrected
	}
	ml, err := board.GenerateMoves(b)
	if err != nil {
		return conn.WriteJSON(searchResponse{Error: err.Error()})
	}
	for _, m := range ml.Moves() {
		if err := conn.WriteJSON(moveScore{Move: m.String(), Score: eval(b, m)}); err != nil {
			return err
		}
	}
	return conn.WriteJSON(app.runSearch(req))
}

func main() {
	var port uint
	flag.UintVar(&port, "port", defaultPort, "port to listen on")
	flag.Parse()
	if port == 0 || port > 65535 {
		fmt.Fprintln(os.Stderr, "invalid port number")
		os.Exit(1)
	}
	app := newApplication()
	fmt.Printf("listening on :%d\n", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), app); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
