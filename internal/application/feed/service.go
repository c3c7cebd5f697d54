package feed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopfeed/backend/internal/domain/shared"
	"github.com/shopfeed/backend/internal/domain/store"
)

// Service runs one feed export: resolve the catalog, map each record,
// stream the result. Records are processed in resolver order and
// written as they are produced, so memory use is bounded by a single
// item regardless of catalog size.
type Service struct {
	stores     store.StoreRepository
	currencies store.CurrencyRepository
	resolver   *Resolver
	mapper     *Mapper
	settings   Settings
	logger     *zap.Logger
}

// NewService creates a new feed export Service
func NewService(
	stores store.StoreRepository,
	currencies store.CurrencyRepository,
	resolver *Resolver,
	mapper *Mapper,
	settings Settings,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		stores:     stores,
		currencies: currencies,
		resolver:   resolver,
		mapper:     mapper,
		settings:   settings,
		logger:     logger,
	}
}

// Generate exports the store's catalog as one XML feed document into
// the request sink. Any error aborts the whole export; the writer still
// closes its open elements so the sink never receives unbalanced XML.
// Callers that write to a published location must stage the sink and
// commit only on success (see the storage publishers).
func (s *Service) Generate(ctx context.Context, req ExportRequest) (err error) {
	if req.Sink == nil {
		return ErrMissingSink
	}
	if req.StoreID == uuid.Nil {
		return ErrMissingStore
	}

	st, err := s.stores.FindByID(ctx, req.StoreID)
	if err != nil {
		return err
	}
	currency, err := s.resolveCurrency(ctx, st)
	if err != nil {
		return err
	}
	env := &Environment{
		Store:    st,
		Currency: currency,
		Language: st.Language().String(),
	}

	records, err := s.resolver.Resolve(ctx, req.StoreID)
	if err != nil {
		return err
	}

	writer, err := NewWriter(req.Sink)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i := range records {
		item, mapErr := s.mapper.Map(ctx, records[i], env)
		if mapErr != nil {
			return mapErr
		}
		if writeErr := writer.WriteItem(item); writeErr != nil {
			return writeErr
		}
	}

	s.logger.Info("feed export complete",
		zap.String("store_id", req.StoreID.String()),
		zap.String("currency", currency.Code),
		zap.Int("items", len(records)))
	return nil
}

// resolveCurrency returns the configured feed currency when it exists
// and is published, otherwise the store's primary currency
func (s *Service) resolveCurrency(ctx context.Context, st *store.Store) (*store.Currency, error) {
	if s.settings.CurrencyCode != "" {
		currency, err := s.currencies.FindByCode(ctx, s.settings.CurrencyCode)
		switch {
		case err == nil && currency.Published:
			return currency, nil
		case err != nil && !errors.Is(err, shared.ErrNotFound):
			return nil, err
		}
	}
	return s.currencies.FindByID(ctx, st.PrimaryCurrencyID)
}
