package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/services"
)

// WordPressHandler, /api/wp/* resource endpoint'lerini yönetir.
type WordPressHandler struct {
	syncService services.SyncService
}

// NewWordPressHandler, constructor.
func NewWordPressHandler(syncService services.SyncService) *WordPressHandler {
	return &WordPressHandler{syncService: syncService}
}

// ListPosts godoc
// GET /api/wp/posts?page=1&per_page=10
func (h *WordPressHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	p, err := parsePagination(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	page, err := h.syncService.ListPosts(r.Context(), p)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusOK, page, localizer(r).T("posts.fetched"))
}

// CreatePost godoc
// POST /api/wp/posts
// Body: {data, language, fallback_language}
func (h *WordPressHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	req, ok := parseResourceRequest(w, r)
	if !ok {
		return
	}

	lang, err := parseContentLanguage(req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	post, err := h.syncService.CreatePost(r.Context(), req.Data, lang)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusCreated, post,
		loc.TWithParams("post.created", map[string]string{"lang": string(lang)}))
}

// GetPost godoc
// GET /api/wp/posts/{id}
func (h *WordPressHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		pkg.Error(w, fmt.Errorf("%w: post id must be an integer", pkg.ErrBadRequest))
		return
	}

	post, err := h.syncService.GetPost(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusOK, post, localizer(r).T("post.fetched"))
}
