package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"

	"github.com/wheelibin/glow/internal/models"
)

const stateStream = "states"

// Broadcaster streams read-back notifications to any subscribed client
// over server-sent events
type Broadcaster struct {
	logger *log.Logger
	server *sse.Server
	addr   string
}

func NewBroadcaster(logger *log.Logger, addr string) *Broadcaster {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(stateStream)

	return &Broadcaster{
		logger: logger,
		server: server,
		addr:   addr,
	}
}

// Notify publishes the notification to the state stream
func (b *Broadcaster) Notify(n models.StateNotification) {
	data, err := json.Marshal(n)
	if err != nil {
		b.logger.Errorf("error marshalling state notification: %v", err)
		return
	}

	b.server.Publish(stateStream, &sse.Event{Data: data})
}

func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.server.ServeHTTP(w, r)
}

// Start serves the event stream on /events until the context is cancelled
func (b *Broadcaster) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", b.ServeHTTP)

	srv := &http.Server{Addr: b.addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		b.server.Close()
	}()

	b.logger.Info("Starting status stream", "addr", b.addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
