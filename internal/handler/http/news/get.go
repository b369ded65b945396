package news

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"intelligent-news/internal/domain/entity"
	"intelligent-news/internal/handler/http/respond"
	"intelligent-news/internal/observability/logging"
	"intelligent-news/internal/usecase/headlines"
)

var (
	errInternal  = errors.New("internal error")
	errNoService = errors.New("news service not configured")
)

// Getter produces the headlines for one request. Both headlines.Service and
// agent.Service satisfy it.
type Getter interface {
	Aggregate(ctx context.Context, f headlines.Filter) ([]entity.Article, error)
}

// GetHandler serves GET /news?category=&country=.
//
// Every outcome is answered with 200: failures are reported through the
// error field next to an empty article list.
type GetHandler struct {
	Svc Getter
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := headlines.Filter{
		Category: q.Get("category"),
		Country:  q.Get("country"),
	}

	articles, err := h.fetch(r.Context(), f)
	if err != nil {
		logging.FromContext(r.Context()).Warn("news request failed",
			slog.String("category", f.Category),
			slog.String("country", f.Country),
			slog.String("error", respond.SanitizeError(err)))
		respond.JSON(w, http.StatusOK, ResponseDTO{
			Articles: []entity.Article{},
			Error:    respond.SanitizeError(err),
		})
		return
	}

	if articles == nil {
		articles = []entity.Article{}
	}
	respond.JSON(w, http.StatusOK, ResponseDTO{Articles: articles})
}

// fetch calls the getter and converts a panic into an error.
func (h GetHandler) fetch(ctx context.Context, f headlines.Filter) (articles []entity.Article, err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		logging.FromContext(ctx).Error("panic while fetching news",
			slog.Any("panic", rec),
			slog.String("stack", string(debug.Stack())))
		articles, err = nil, errInternal
	}()

	if h.Svc == nil {
		return nil, errNoService
	}
	return h.Svc.Aggregate(ctx, f)
}
