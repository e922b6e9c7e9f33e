// Package web serves a render over HTTP: an index page, the finished image
// as PNG, and a websocket that streams render progress so the page knows
// when to fetch the image.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/picture"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/coder/websocket"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Mandelbrot</title></head>
<body>
<p id="status">Rendering...</p>
<img id="image" style="display:none; max-width:100%"/>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (message) => {
	const progress = JSON.parse(message.data);
	const status = document.getElementById("status");
	if (progress.Done >= progress.Total) {
		status.textContent = "Done";
		const image = document.getElementById("image");
		image.src = "/image.png";
		image.style.display = "block";
		ws.close();
	} else {
		status.textContent = "Rendering: " + Math.floor(100 * progress.Done / progress.Total) + "%";
	}
};
</script>
</body>
</html>`

type progress struct {
	Done  uint
	Total uint
}

type Server struct {
	address string
	done    atomic.Uint64
	logger  bslogger.Logger
	mutex   sync.RWMutex
	png     []byte
	total   uint

	settings mandelbrot.Settings
}

func NewServer(settings mandelbrot.Settings, address string) *Server {
	return &Server{
		address:  address,
		logger:   bslogger.NewLogger("WebServer", bslogger.Normal, nil),
		settings: settings,
	}
}

// Run renders in the background and serves until the listener fails.
func (s *Server) Run() error {
	settings := s.settings
	settings.Progress = func(done uint, total uint) {
		s.done.Store(uint64(done))
	}
	renderer, err := mandelbrot.NewRenderer(settings)
	if err != nil {
		return err
	}
	settings = renderer.Settings()
	s.total = settings.Width * settings.Height

	go func() {
		buffer := renderer.Render()

		var encoded bytes.Buffer
		if err := picture.EncodePNG(&encoded, buffer, settings.Width, settings.Height); err != nil {
			s.logger.Errorf("Unable to encode render: %s", err)
			return
		}
		s.mutex.Lock()
		s.png = encoded.Bytes()
		s.mutex.Unlock()
		s.logger.Infof("Render complete: %d pixels", s.total)
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/image.png", s.handleImage)
	mux.HandleFunc("/ws", s.handleProgress)

	server := &http.Server{
		Addr:              s.address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Infof("Listening on http://%s", s.address)
	return server.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	s.mutex.RLock()
	encoded := s.png
	s.mutex.RUnlock()

	if encoded == nil {
		http.Error(w, "render still in progress", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(encoded)
}

// handleProgress pushes the pixel count every half second until the render
// finishes, then closes the socket.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warningf("Unable to accept websocket: %s", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		s.mutex.RLock()
		ready := s.png != nil
		s.mutex.RUnlock()

		current := progress{Done: uint(s.done.Load()), Total: s.total}
		if !ready && current.Done >= current.Total {
			// Hold the last pixel back until the PNG is servable
			current.Done = current.Total - 1
		}
		if err := s.writeProgress(ctx, conn, current); err != nil {
			return
		}
		if current.Done >= current.Total {
			conn.Close(websocket.StatusNormalClosure, "render complete")
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) writeProgress(ctx context.Context, conn *websocket.Conn, current progress) error {
	payload, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, payload)
}
