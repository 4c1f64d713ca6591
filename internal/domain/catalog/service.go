package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
	"github.com/Spok95/materials-catalog/internal/infra/metrics"
)

// Service — единственная точка работы с хранилищем каталога.
type Service struct {
	store   Store
	log     *slog.Logger
	metrics *metrics.Catalog
	yield   materials.YieldModel
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option { return func(s *Service) { s.log = log } }

func WithMetrics(m *metrics.Catalog) Option { return func(s *Service) { s.metrics = m } }

func WithYield(y materials.YieldModel) Option { return func(s *Service) { s.yield = y } }

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		yield: materials.DefaultYield,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Lookups — списки типов и поставщиков для выпадающих списков формы.
func (s *Service) Lookups(ctx context.Context) ([]materials.Type, []materials.Supplier, error) {
	types, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, nil, s.storeFailed("list types", err)
	}
	suppliers, err := s.store.ListSuppliers(ctx)
	if err != nil {
		return nil, nil, s.storeFailed("list suppliers", err)
	}
	return types, suppliers, nil
}

// ListMaterialsForDisplay собирает строки списка с названием типа и
// стоимостью закупки. Порядок — как в хранилище.
func (s *Service) ListMaterialsForDisplay(ctx context.Context) ([]DisplayRow, error) {
	types, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, s.storeFailed("list types", err)
	}
	typeNames := make(map[int64]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}

	items, err := s.store.ListMaterials(ctx)
	if err != nil {
		return nil, s.storeFailed("list materials", err)
	}

	out := make([]DisplayRow, 0, len(items))
	var (
		below int
		total float64
	)
	for _, m := range items {
		typeName, ok := typeNames[m.TypeID]
		if !ok {
			s.log.Warn("material skipped: unknown type", "material_id", m.ID, "type_id", m.TypeID)
			continue
		}
		rep, err := materials.ComputeReplenishment(m.QuantityInStock, m.MinQuantity, m.PackageQuantity, m.PricePerUnit)
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", m.ID, err)
		}
		row := newDisplayRow(m, typeName, rep)
		if row.BelowMinimum() {
			below++
			total += row.PurchaseCost
		}
		out = append(out, row)
	}

	s.metrics.Listed(below, total)
	s.log.Debug("materials listed", "count", len(out), "below_minimum", below)
	return out, nil
}

func (s *Service) GetMaterial(ctx context.Context, id int64) (materials.Material, error) {
	m, err := s.store.GetMaterial(ctx, id)
	if err != nil {
		return materials.Material{}, s.storeFailed("get material", err)
	}
	return m, nil
}

// EditForm заполняет форму редактирования сохранёнными значениями.
func (s *Service) EditForm(ctx context.Context, id int64) (materials.Candidate, error) {
	m, err := s.GetMaterial(ctx, id)
	if err != nil {
		return materials.Candidate{}, err
	}
	types, suppliers, err := s.Lookups(ctx)
	if err != nil {
		return materials.Candidate{}, err
	}

	c := materials.Candidate{
		Name:            m.Name,
		Quantity:        formatNumber(m.QuantityInStock),
		Unit:            m.Unit,
		PackageQuantity: formatNumber(m.PackageQuantity),
		MinQuantity:     formatNumber(m.MinQuantity),
		Price:           formatNumber(m.PricePerUnit),
	}
	for _, t := range types {
		if t.ID == m.TypeID {
			c.TypeName = t.Name
			break
		}
	}
	if m.SupplierID != nil {
		for _, sp := range suppliers {
			if sp.ID == *m.SupplierID {
				c.SupplierName = sp.Name
				break
			}
		}
	}
	return c, nil
}

// CreateMaterial проверяет форму и сохраняет новый материал.
func (s *Service) CreateMaterial(ctx context.Context, c materials.Candidate) (int64, error) {
	f, err := s.validate(ctx, c)
	if err != nil {
		return 0, err
	}
	id, err := s.store.InsertMaterial(ctx, f)
	if err != nil {
		return 0, s.storeFailed("insert material", err)
	}
	s.metrics.Saved("create")
	s.log.Info("material created", "material_id", id, "name", f.Name)
	return id, nil
}

// UpdateMaterial проверяет форму и перезаписывает материал id.
func (s *Service) UpdateMaterial(ctx context.Context, id int64, c materials.Candidate) error {
	f, err := s.validate(ctx, c)
	if err != nil {
		return err
	}
	if err := s.store.UpdateMaterial(ctx, id, f); err != nil {
		return s.storeFailed("update material", err)
	}
	s.metrics.Saved("update")
	s.log.Info("material updated", "material_id", id, "name", f.Name)
	return nil
}

// ListSuppliersForMaterial — поставщик материала (ноль или один).
func (s *Service) ListSuppliersForMaterial(ctx context.Context, id int64) ([]materials.Supplier, error) {
	m, err := s.GetMaterial(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.SupplierID == nil {
		return nil, nil
	}
	sp, err := s.store.GetSupplier(ctx, *m.SupplierID)
	if err != nil {
		return nil, s.storeFailed("get supplier", err)
	}
	return []materials.Supplier{sp}, nil
}

func (s *Service) EstimateProducedUnits(qty, a, b float64) int64 {
	return s.yield.EstimateProducedUnits(qty, a, b)
}

func (s *Service) validate(ctx context.Context, c materials.Candidate) (materials.Fields, error) {
	types, suppliers, err := s.Lookups(ctx)
	if err != nil {
		return materials.Fields{}, err
	}
	f, err := materials.Validate(c, types, suppliers)
	if err != nil {
		var vErr *materials.ValidationError
		if errors.As(err, &vErr) {
			s.metrics.Rejected(vErr.Field)
			s.log.Debug("material rejected", "field", vErr.Field, "reason", vErr.Reason)
		}
		return materials.Fields{}, err
	}
	return f, nil
}

// storeFailed учитывает сбой хранилища; ошибка возвращается как есть.
func (s *Service) storeFailed(op string, err error) error {
	var (
		se *materials.StoreError
		nf *materials.NotFoundError
	)
	if !errors.As(err, &se) && errors.As(err, &nf) {
		s.log.Debug("not found", "op", op, "kind", nf.Kind, "id", nf.ID)
		return err
	}
	s.metrics.StoreFailed(op)
	s.log.Error("store failed", "op", op, "err", err)
	return err
}
