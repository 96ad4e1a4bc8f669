package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/pkg/wpapi"
	"github.com/sirupsen/logrus"
)

// SyncService, çok dilli client verisini WordPress/WooCommerce'e aktarır.
//
// Create akışı: ExtractI18n → TransformService → uzak API → normalize yanıt.
// İlk yapısal hata akışı durdurur (ErrStructuralInput); uzak API'ye istek gitmez.
type SyncService interface {
	// Dispatch, POST /api/sync isteğini type'a göre ilgili işleme yönlendirir.
	Dispatch(ctx context.Context, req *models.SyncRequest) (*models.SyncResult, error)

	CreateProduct(ctx context.Context, data map[string]any, lang models.LanguageCode) (*models.RemoteProduct, error)
	CreateOrder(ctx context.Context, data map[string]any, lang models.LanguageCode) (*models.RemoteOrder, error)
	CreatePost(ctx context.Context, data map[string]any, lang models.LanguageCode) (*models.RemotePost, error)

	ListProducts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteProduct], error)
	ListOrders(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteOrder], error)
	ListPosts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemotePost], error)
	GetPost(ctx context.Context, id int) (*models.RemotePost, error)

	// List, GET /api/sync?type=... için listeleme türüne göre yönlendirir.
	List(ctx context.Context, listType models.ListType, p models.Pagination) (any, error)
}

type syncService struct {
	transform  TransformService
	validation ValidationService
	content    wpapi.ContentAPI
	commerce   wpapi.CommerceAPI
	log        *logrus.Entry
}

// NewSyncService, constructor. Uzak API'ler interface olarak alınır; testlerde fake verilir.
func NewSyncService(
	transform TransformService,
	validation ValidationService,
	content wpapi.ContentAPI,
	commerce wpapi.CommerceAPI,
) SyncService {
	return &syncService{
		transform:  transform,
		validation: validation,
		content:    content,
		commerce:   commerce,
		log:        logrus.WithField("component", "sync"),
	}
}

func (s *syncService) Dispatch(ctx context.Context, req *models.SyncRequest) (*models.SyncResult, error) {
	syncType, ok := models.ParseSyncType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported sync type %q (supported: %s)",
			pkg.ErrBadRequest, req.Type, strings.Join(models.SupportedSyncTypes, ", "))
	}

	lang, err := models.ParseLanguageCode(req.Language)
	if err != nil {
		return nil, err
	}
	// fallback_language doğrulanır ve geri dönülür; çözümleme her zaman en'e düşer.
	fallback, err := models.ParseLanguageCode(req.FallbackLanguage)
	if err != nil {
		return nil, err
	}

	data := req.Data
	if data == nil {
		data = map[string]any{}
	}

	result := &models.SyncResult{
		Type:             syncType,
		Language:         lang,
		FallbackLanguage: fallback,
	}

	switch syncType {
	case models.SyncCreateProduct:
		result.Data, err = s.CreateProduct(ctx, data, lang)
	case models.SyncCreateOrder:
		result.Data, err = s.CreateOrder(ctx, data, lang)
	case models.SyncCreatePost:
		result.Data, err = s.CreatePost(ctx, data, lang)
	case models.SyncValidateProduct:
		result.Validation = s.validation.ValidateProduct(data)
	case models.SyncValidateI18n:
		result.Validation = s.validation.ValidateI18n(data)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *syncService) CreateProduct(ctx context.Context, data map[string]any, lang models.LanguageCode) (*models.RemoteProduct, error) {
	i18n, err := ExtractI18n(data)
	if err != nil {
		return nil, err
	}

	product := s.transform.ToProduct(data, i18n, lang)
	created, err := s.commerce.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"id": created.ID, "language": lang}).Info("product created")
	return created, nil
}

func (s *syncService) CreateOrder(ctx context.Context, data map[string]any, lang models.LanguageCode) (*models.RemoteOrder, error) {
	i18n, err := ExtractI18n(data)
	if err != nil {
		return nil, err
	}

	order := s.transform.ToOrder(data, i18n, lang)
	created, err := s.commerce.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"id": created.ID, "language": lang}).Info("order created")
	return created, nil
}

func (s *syncService) CreatePost(ctx context.Context, data map[string]any, lang models.LanguageCode) (*models.RemotePost, error) {
	i18n, err := ExtractI18n(data)
	if err != nil {
		return nil, err
	}

	post := s.transform.ToPost(data, i18n, lang)
	created, err := s.content.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"id": created.ID, "language": lang}).Info("post created")
	return created, nil
}

func (s *syncService) ListProducts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteProduct], error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}
	return s.commerce.ListProducts(ctx, p)
}

func (s *syncService) ListOrders(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteOrder], error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}
	return s.commerce.ListOrders(ctx, p)
}

func (s *syncService) ListPosts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemotePost], error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}
	return s.content.ListPosts(ctx, p)
}

func (s *syncService) GetPost(ctx context.Context, id int) (*models.RemotePost, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: post id must be a positive integer", pkg.ErrBadRequest)
	}
	return s.content.GetPost(ctx, id)
}

func (s *syncService) List(ctx context.Context, listType models.ListType, p models.Pagination) (any, error) {
	switch listType {
	case models.ListProducts:
		return s.ListProducts(ctx, p)
	case models.ListOrders:
		return s.ListOrders(ctx, p)
	case models.ListPosts:
		return s.ListPosts(ctx, p)
	}
	return nil, fmt.Errorf("%w: unsupported list type %q (supported: %s)",
		pkg.ErrBadRequest, listType, strings.Join(models.SupportedListTypes, ", "))
}

func validatePagination(p models.Pagination) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrBadRequest, err)
	}
	return nil
}
