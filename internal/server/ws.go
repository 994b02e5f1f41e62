package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/parsa1021/tripguide/internal/search"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// liveSearchMessage is one client frame on the live-search channel.
type liveSearchMessage struct {
	// Type is "query" for live typing or "submit" for an explicit search.
	Type  string `json:"type"`
	Query string `json:"query"`
}

// handleLiveSearch is the websocket channel for live typing: queries are
// debounced server-side so only the final query within the interval runs,
// and results are pushed back as they resolve. A "submit" frame also
// records the query in the search history.
func (s *Server) handleLiveSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	clientID := uuid.New().String()
	debouncer := search.NewDebouncer(search.DebounceInterval)
	defer debouncer.Stop()

	// Writes happen from debounce timers as well as the read loop.
	var writeMu sync.Mutex
	send := func(res search.Result) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(res); err != nil {
			log.Printf("live search %s: write failed: %v", clientID, err)
		}
	}

	ctx := r.Context()
	for {
		var msg liveSearchMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live search %s: read failed: %v", clientID, err)
			}
			return
		}

		switch msg.Type {
		case "submit":
			debouncer.Stop()
			s.history.Push(ctx, msg.Query)
			res := s.engine.Filter(msg.Query)
			for _, cat := range res.ExpandCategories {
				s.accordion.Open(cat)
			}
			send(res)
		default:
			query := msg.Query
			debouncer.Trigger(func() {
				res := s.engine.Filter(query)
				for _, cat := range res.ExpandCategories {
					s.accordion.Open(cat)
				}
				send(res)
			})
		}
	}
}
