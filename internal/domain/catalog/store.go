// Package catalog загружает иерархию подразделение → продукт → блок PFD.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
)

//go:embed catalog.json
var defaultCatalog []byte

// Store каталог, доступный только на чтение после Load
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	document *Document
	loaded   bool
}

// NewStore создает каталог. Пустой path означает встроенный каталог.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load читает и разбирает файл каталога. Ошибки возвращаются в LoadResult.
func (s *Store) Load(ctx context.Context) LoadResult {
	raw, err := s.read(ctx)
	if err != nil {
		s.logger.Error("catalog load failed", "path", s.path, "error", err)
		return LoadResult{IsSuccess: false, Error: err.Error()}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Error("catalog parse failed", "path", s.path, "error", err)
		return LoadResult{IsSuccess: false, Error: fmt.Sprintf("invalid catalog: %v", err)}
	}

	s.mu.Lock()
	s.document = &doc
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("catalog loaded", "divisions", len(doc.Divisions))
	return LoadResult{IsSuccess: true}
}

func (s *Store) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return defaultCatalog, nil
	}
	return os.ReadFile(s.path)
}

// IsLoaded true после успешной загрузки
func (s *Store) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Divisions копия всех подразделений в порядке файла.
// Все методы чтения возвращают копии, каталог после Load не меняется.
func (s *Store) Divisions() []Division {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.document == nil {
		return []Division{}
	}
	out := make([]Division, len(s.document.Divisions))
	for i, d := range s.document.Divisions {
		out[i] = d.clone()
	}
	return out
}

// Division подразделение по id
func (s *Store) Division(id string) (*Division, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.findDivision(id)
	if d == nil {
		return nil, false
	}
	out := d.clone()
	return &out, true
}

// Products продукты подразделения
func (s *Store) Products(divisionID string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.findDivision(divisionID)
	if d == nil || d.Products == nil {
		return []Product{}
	}
	out := make([]Product, len(d.Products))
	for i, p := range d.Products {
		out[i] = p.clone()
	}
	return out
}

// ProductCount количество продуктов подразделения
func (s *Store) ProductCount(divisionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.findDivision(divisionID); d != nil {
		return len(d.Products)
	}
	return 0
}

// Product продукт по id внутри подразделения
func (s *Store) Product(divisionID, productID string) (*Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.findProduct(divisionID, productID)
	if p == nil {
		return nil, false
	}
	out := p.clone()
	return &out, true
}

// PfdBlocks блоки продукта
func (s *Store) PfdBlocks(divisionID, productID string) []PfdBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.findProduct(divisionID, productID)
	if p == nil || p.PfdBlocks == nil {
		return []PfdBlock{}
	}
	return slices.Clone(p.PfdBlocks)
}

// PfdBlock блок по id внутри продукта
func (s *Store) PfdBlock(divisionID, productID, blockID string) (*PfdBlock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b := s.findBlock(divisionID, productID, blockID); b != nil {
		out := *b
		return &out, true
	}
	return nil, false
}

// DivisionName имя подразделения или заглушка
func (s *Store) DivisionName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.findDivision(id); d != nil {
		return d.Name
	}
	return PlaceholderDivision
}

// ProductName имя продукта или заглушка
func (s *Store) ProductName(divisionID, productID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.findProduct(divisionID, productID); p != nil {
		return p.Name
	}
	return PlaceholderProduct
}

// BlockName имя блока или заглушка
func (s *Store) BlockName(divisionID, productID, blockID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b := s.findBlock(divisionID, productID, blockID); b != nil {
		return b.Name
	}
	return PlaceholderBlock
}

// findDivision, findProduct и findBlock вызываются под s.mu
func (s *Store) findDivision(id string) *Division {
	if s.document == nil {
		return nil
	}
	for i := range s.document.Divisions {
		if s.document.Divisions[i].ID == id {
			return &s.document.Divisions[i]
		}
	}
	return nil
}

func (s *Store) findProduct(divisionID, productID string) *Product {
	d := s.findDivision(divisionID)
	if d == nil {
		return nil
	}
	for i := range d.Products {
		if d.Products[i].ID == productID {
			return &d.Products[i]
		}
	}
	return nil
}

func (s *Store) findBlock(divisionID, productID, blockID string) *PfdBlock {
	p := s.findProduct(divisionID, productID)
	if p == nil {
		return nil
	}
	for i := range p.PfdBlocks {
		if p.PfdBlocks[i].ID == blockID {
			return &p.PfdBlocks[i]
		}
	}
	return nil
}
