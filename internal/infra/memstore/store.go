package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/Spok95/materials-catalog/internal/domain/catalog"
	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

// Store — каталог в памяти процесса, порядок вставки сохраняется.
type Store struct {
	mu        sync.Mutex
	types     []materials.Type
	suppliers []materials.Supplier
	items     []materials.Material
	itemsMap  map[int64]int
	nextID    int64
}

func New() *Store {
	return &Store{itemsMap: make(map[int64]int), nextID: 1}
}

// Verify interface compliance
var _ catalog.Store = (*Store)(nil)

// AddType добавляет тип и возвращает его id.
func (s *Store) AddType(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.types) + 1)
	s.types = append(s.types, materials.Type{ID: id, Name: name})
	return id
}

func (s *Store) AddSupplier(name string, rating float64, start time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.suppliers) + 1)
	s.suppliers = append(s.suppliers, materials.Supplier{ID: id, Name: name, Rating: rating, StartDate: start})
	return id
}

func (s *Store) ListTypes(_ context.Context) ([]materials.Type, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]materials.Type(nil), s.types...), nil
}

func (s *Store) ListSuppliers(_ context.Context) ([]materials.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]materials.Supplier(nil), s.suppliers...), nil
}

func (s *Store) GetSupplier(_ context.Context, id int64) (materials.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.suppliers {
		if sp.ID == id {
			return sp, nil
		}
	}
	return materials.Supplier{}, &materials.NotFoundError{Kind: materials.KindSupplier, ID: id}
}

func (s *Store) ListMaterials(_ context.Context) ([]materials.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]materials.Material, len(s.items))
	for i, m := range s.items {
		out[i] = clone(m)
	}
	return out, nil
}

func (s *Store) GetMaterial(_ context.Context, id int64) (materials.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.itemsMap[id]
	if !ok {
		return materials.Material{}, &materials.NotFoundError{Kind: materials.KindMaterial, ID: id}
	}
	return clone(s.items[idx]), nil
}

func (s *Store) InsertMaterial(_ context.Context, f materials.Fields) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRefs(f); err != nil {
		return 0, err
	}
	id := s.nextID
	s.nextID++
	s.itemsMap[id] = len(s.items)
	s.items = append(s.items, clone(materials.Material{ID: id, Fields: f}))
	return id, nil
}

func (s *Store) UpdateMaterial(_ context.Context, id int64, f materials.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.itemsMap[id]
	if !ok {
		return &materials.NotFoundError{Kind: materials.KindMaterial, ID: id}
	}
	if err := s.checkRefs(f); err != nil {
		return err
	}
	s.items[idx] = clone(materials.Material{ID: id, Fields: f})
	return nil
}

// checkRefs повторяет внешние ключи PostgreSQL-схемы.
func (s *Store) checkRefs(f materials.Fields) error {
	if !s.hasType(f.TypeID) {
		return &materials.StoreError{Op: "check references", Err: &materials.NotFoundError{Kind: materials.KindType, ID: f.TypeID}}
	}
	if f.SupplierID != nil && !s.hasSupplier(*f.SupplierID) {
		return &materials.StoreError{Op: "check references", Err: &materials.NotFoundError{Kind: materials.KindSupplier, ID: *f.SupplierID}}
	}
	return nil
}

func (s *Store) hasType(id int64) bool {
	for _, t := range s.types {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) hasSupplier(id int64) bool {
	for _, sp := range s.suppliers {
		if sp.ID == id {
			return true
		}
	}
	return false
}

func clone(m materials.Material) materials.Material {
	if m.SupplierID != nil {
		id := *m.SupplierID
		m.SupplierID = &id
	}
	return m
}
