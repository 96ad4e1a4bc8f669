package wpapi

import (
	"context"
	"strconv"

	"github.com/akinalp/wpsync/config"
	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg/document"
)

// ContentAPI, WordPress REST API (wp/v2) işlemleri.
type ContentAPI interface {
	// CreatePost, yeni yazı oluşturur ve normalize edilmiş yanıtı döner.
	CreatePost(ctx context.Context, post *models.Post) (*models.RemotePost, error)

	// ListPosts, sayfalı yazı listesini featured media URL'leriyle döner.
	ListPosts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemotePost], error)

	// GetPost, tek bir yazıyı ID ile döner.
	GetPost(ctx context.Context, id int) (*models.RemotePost, error)
}

type wordPress struct {
	client *Client
}

// NewWordPress, application password ile kimlik doğrulayan ContentAPI oluşturur.
func NewWordPress(cfg config.RemoteConfig) ContentAPI {
	auth := Auth{
		Username: cfg.WPUsername,
		Password: cfg.WPAppPassword,
		Bearer:   cfg.AuthType == "bearer",
	}
	return &wordPress{client: NewClient("WordPress", cfg.BaseURL, "wp/v2", auth, cfg.Timeout)}
}

func (w *wordPress) CreatePost(ctx context.Context, post *models.Post) (*models.RemotePost, error) {
	resp, err := w.client.Do(ctx, "POST", "posts", nil, post)
	if err != nil {
		return nil, err
	}
	obj, _ := resp.Body.(map[string]any)
	result := normalizePost(obj)
	return &result, nil
}

func (w *wordPress) ListPosts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemotePost], error) {
	query := pageQuery(p.Page, p.PerPage)
	query.Set("_embed", "true")

	resp, err := w.client.Do(ctx, "GET", "posts", query, nil)
	if err != nil {
		return nil, err
	}

	total, pages := w.client.Count(ctx, "posts", p.PerPage)

	raw := objects(resp.Body)
	items := make([]models.RemotePost, 0, len(raw))
	for _, obj := range raw {
		items = append(items, normalizePost(obj))
	}
	return models.NewPaginatedResponse(items, p, total, pages), nil
}

func (w *wordPress) GetPost(ctx context.Context, id int) (*models.RemotePost, error) {
	resp, err := w.client.Do(ctx, "GET", "posts/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return nil, err
	}
	obj, _ := resp.Body.(map[string]any)
	result := normalizePost(obj)
	return &result, nil
}

// normalizePost, WordPress yazı objesini düz client şekline çevirir.
func normalizePost(obj map[string]any) models.RemotePost {
	return models.RemotePost{
		ID:               document.Int(obj, 0, "id"),
		Title:            rendered(obj, "title"),
		Content:          rendered(obj, "content"),
		Excerpt:          rendered(obj, "excerpt"),
		Status:           document.String(obj, "", "status"),
		Date:             document.String(obj, "", "date"),
		Modified:         document.String(obj, "", "modified"),
		Slug:             document.String(obj, "", "slug"),
		Link:             document.String(obj, "", "link"),
		Categories:       intList(document.List(obj, "categories")),
		Tags:             intList(document.List(obj, "tags")),
		FeaturedMedia:    document.Int(obj, 0, "featured_media"),
		FeaturedMediaURL: featuredMediaURL(obj),
	}
}

// rendered, WordPress'in {"rendered": "..."} alanını açar. Düz string de kabul edilir.
func rendered(obj map[string]any, key string) string {
	return document.String(obj, "", key+".rendered", key)
}

// featuredMediaURL, _embed=true yanıtındaki ilk featured media'nın URL'i.
func featuredMediaURL(obj map[string]any) *string {
	embedded := document.Object(obj, "_embedded")
	media := document.List(embedded, "wp:featuredmedia")
	if len(media) == 0 {
		return nil
	}
	first, ok := media[0].(map[string]any)
	if !ok {
		return nil
	}
	src, ok := document.Lookup(first, "source_url")
	if !ok {
		return nil
	}
	s, ok := src.(string)
	if !ok {
		return nil
	}
	return &s
}

func intList(list []any) []int {
	out := make([]int, 0, len(list))
	for _, v := range list {
		if n, ok := document.ToInt(v); ok {
			out = append(out, n)
		}
	}
	return out
}
