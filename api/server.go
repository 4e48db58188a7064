package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foobos/promotx/sequence"
)

// Api serves frame previews for the promo sequence alongside the static
// preview client. Snapshots can be requested for any frame in any order.
type Api struct {
	config    sequence.Config
	animation sequence.Animation
}

// NewApi creates an instance of an Api.
func NewApi(config sequence.Config, animation sequence.Animation) *Api {
	a := new(Api)
	a.config = config
	a.animation = animation

	return a
}

// Handler returns the routed HTTP handler.
func (a *Api) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/snapshot", a.handleSnapshot)
	r.Get("/api/sequence", a.handleSequence)
	r.Handle("/*", http.FileServer(http.Dir("client/dist")))

	return r
}

func (a *Api) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	frame, err := strconv.ParseInt(r.URL.Query().Get("frame"), 10, 64)
	if err != nil {
		http.Error(w, "frame must be an integer", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.animation.Snapshot(frame))
}

func (a *Api) handleSequence(w http.ResponseWriter, r *http.Request) {
	meta := struct {
		URL            string  `json:"url"`
		DurationFrames int64   `json:"durationFrames"`
		FPS            float64 `json:"fps"`
	}{
		URL:            sequence.SiteURL,
		DurationFrames: a.config.Stream.DurationFrames,
		FPS:            a.config.Stream.FPS,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meta)
}

// Serve runs the preview server.
func (a *Api) Serve(addr string) {
	log.Println("Listening...")
	http.ListenAndServe(addr, a.Handler())
}
