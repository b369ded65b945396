package news

import "net/http"

// Register mounts the root and news routes on mux.
func Register(mux *http.ServeMux, svc Getter) {
	mux.Handle("GET /{$}", RootHandler{})
	mux.Handle("GET /news", GetHandler{Svc: svc})
}
