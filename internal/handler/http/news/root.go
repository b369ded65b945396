package news

import (
	"net/http"

	"intelligent-news/internal/handler/http/respond"
)

// RootHandler answers GET / with a short usage message.
type RootHandler struct{}

func (RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, RootDTO{Message: RootMessage})
}
