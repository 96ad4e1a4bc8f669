// Package wpapi, WordPress (wp/v2) ve WooCommerce (wc/v3) REST API'leri için
// HTTP client'ları sağlar.
//
// Her çağrı tek denemedir (retry yok). Yanıtlar tipsiz JSON olarak okunur ve
// models.Remote* tiplerine normalize edilir; WordPress'in {"rendered": "..."}
// sarmalayıcıları gibi detaylar client'a yansımaz.
//
// Her istek bir OpenTelemetry span'i içinde çalışır: "wpapi.<service>.<METHOD>".
// Exporter kurulmamışsa global no-op provider kullanılır.
package wpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/pkg/document"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/akinalp/wpsync/pkg/wpapi"

// maxResponseBytes, tek bir yanıt gövdesi için okuma limiti (8MB).
const maxResponseBytes = 8 << 20

// Auth, uzak API kimlik bilgileri.
// Bearer=true ise Password "Authorization: Bearer" olarak gönderilir.
type Auth struct {
	Username string
	Password string
	Bearer   bool
}

// Error, uzak API'nin 2xx dışı yanıtı veya bağlantı hatası.
// StatusCode=0 bağlantı/transport hatası demektir.
type Error struct {
	Service    string // "WordPress" veya "WooCommerce"
	StatusCode int
	Details    any // Uzak API'nin hata gövdesi (genellikle {"code","message","data"})
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API connection error: %s", e.Service, detailMessage(e.Details))
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, detailMessage(e.Details))
}

// Unwrap, errors.Is(err, pkg.ErrRemote) kontrolünü sağlar.
func (e *Error) Unwrap() error {
	return pkg.ErrRemote
}

// HTTPStatus, client'a yansıtılacak status: upstream 4xx/5xx aynen, diğerleri 502.
func (e *Error) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode < 600 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// detailMessage, WordPress hata gövdesindeki "message" alanını tercih eder.
func detailMessage(details any) string {
	if obj, ok := details.(map[string]any); ok {
		if msg := document.String(obj, "", "message"); msg != "" {
			return msg
		}
	}
	if s := document.Display(details); s != "" {
		return s
	}
	return "no details"
}

// Client, tek bir REST namespace'ine (ör: /wp-json/wp/v2) bağlı düşük seviye client.
type Client struct {
	service    string
	baseURL    string
	auth       Auth
	httpClient *http.Client
	tracer     trace.Tracer
	log        *logrus.Entry
}

// NewClient, siteRoot + namespace için client oluşturur.
// siteRoot: "https://example.com", namespace: "wp/v2".
func NewClient(service, siteRoot, namespace string, auth Auth, timeout time.Duration) *Client {
	return &Client{
		service:    service,
		baseURL:    strings.TrimRight(siteRoot, "/") + "/wp-json/" + strings.Trim(namespace, "/"),
		auth:       auth,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
		log:        logrus.WithField("component", "wpapi").WithField("service", service),
	}
}

// Response, başarılı bir çağrının decode edilmiş gövdesi ve header'ları.
type Response struct {
	Body   any
	Header http.Header
}

// Do, tek bir istek gönderir. 2xx dışı yanıtlar *Error döner.
// body nil değilse JSON olarak gönderilir.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body any) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "wpapi."+strings.ToLower(c.service)+"."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("wpapi.endpoint", endpoint),
		),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", c.service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", c.service, err)
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		c.log.WithError(err).Warnf("%s %s failed", method, endpoint)
		return nil, &Error{Service: c.service, Details: err.Error()}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.log.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("remote call")

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read error")
		return nil, &Error{Service: c.service, Details: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := &Error{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Details:    decodeDetails(raw, resp.Status),
		}
		span.SetStatus(codes.Error, remoteErr.Error())
		c.log.WithField("status", resp.StatusCode).Warnf("%s %s rejected: %s", method, endpoint, detailMessage(remoteErr.Details))
		return nil, remoteErr
	}

	var decoded any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid json")
			return nil, &Error{Service: c.service, Details: "invalid JSON response: " + err.Error()}
		}
	}

	return &Response{Body: decoded, Header: resp.Header}, nil
}

// Count, koleksiyonun toplam kayıt ve sayfa sayısını HEAD isteğiyle okur
// (X-WP-Total / X-WP-TotalPages). Header yoksa veya istek başarısızsa 0 döner.
// perPage, liste isteğindekiyle aynı olmalı; aksi halde sayfa sayısı tutmaz.
func (c *Client) Count(ctx context.Context, endpoint string, perPage int) (total, pages int) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))

	ctx, span := c.tracer.Start(ctx, "wpapi."+strings.ToLower(c.service)+"."+http.MethodHead,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("wpapi.endpoint", endpoint)),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url(endpoint, query), nil)
	if err != nil {
		return 0, 0
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		c.log.WithError(err).Warnf("HEAD %s failed, totals unavailable", endpoint)
		return 0, 0
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	total = headerInt(resp.Header, "X-WP-Total")
	pages = headerInt(resp.Header, "X-WP-TotalPages")
	return total, pages
}

func (c *Client) url(endpoint string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) authorize(req *http.Request) {
	switch {
	case c.auth.Bearer && c.auth.Password != "":
		req.Header.Set("Authorization", "Bearer "+c.auth.Password)
	case c.auth.Username != "" || c.auth.Password != "":
		req.SetBasicAuth(c.auth.Username, c.auth.Password)
	}
}

func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(h.Get(key)))
	if err != nil {
		return 0
	}
	return n
}

// decodeDetails, hata gövdesini JSON olarak çözmeye çalışır; olmazsa düz metin.
func decodeDetails(raw []byte, status string) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{"message": status}
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err == nil {
		return v
	}
	return map[string]any{"message": string(trimmed)}
}

// pageQuery, liste istekleri için page/per_page query'si.
func pageQuery(page, perPage int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}

// objects, decode edilmiş bir JSON dizisinden obje elemanlarını toplar.
func objects(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
