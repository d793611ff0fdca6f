// Package mockdata поставляет имитацию распознавания текста и перечней позиций по листам.
// При отсутствии файлов-фикстур данные генерируются детерминированно.
package mockdata

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/brianvoe/gofakeit/v6"

	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/matching"
)

// Имена файлов-фикстур в каталоге данных
const (
	TextractFixture = "textract-results.json"
	ItemsFixture    = "excel-items.json"
)

// Параметры сетки сгенерированных рамок
const (
	gridColumns = 3
	gridOriginX = 0.05
	gridOriginY = 0.08
	gridStepX   = 0.30
	gridStepY   = 0.15
	gridWidth   = 0.15
	gridHeight  = 0.025
)

// Store источник имитированных данных
type Store struct {
	dir    string
	logger *slog.Logger

	mu       sync.RWMutex
	textract *textractFixture
	items    map[string][]Sheet
}

// NewStore создает источник. Пустой dir означает только сгенерированные данные.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:    dir,
		logger: logger,
		items:  make(map[string][]Sheet),
	}
}

// Load параллельно читает обе фикстуры. Ошибки только логируются.
func (s *Store) Load(ctx context.Context) {
	if s.dir == "" {
		return
	}

	var (
		wg       sync.WaitGroup
		textract *textractFixture
		items    map[string][]Sheet
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, err := s.readFixture(ctx, TextractFixture)
		if err != nil {
			s.logger.Warn("mock detection data not found, using generated data", "error", err)
			return
		}
		if textract, err = parseTextractFixture(raw); err != nil {
			s.logger.Warn("mock detection data is malformed, using generated data", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		raw, err := s.readFixture(ctx, ItemsFixture)
		if err != nil {
			s.logger.Warn("mock item data not found, using generated data", "error", err)
			return
		}
		if items, err = parseItemsFixture(raw); err != nil {
			s.logger.Warn("mock item data is malformed, using generated data", "error", err)
		}
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if textract != nil {
		s.textract = textract
	}
	for blockID, sheets := range items {
		s.items[blockID] = sheets
	}
}

func (s *Store) readFixture(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.dir, name))
}

// ImportSheets заменяет листы блока (например, из загруженного xlsx)
func (s *Store) ImportSheets(blockID string, sheets []Sheet) error {
	if blockID == "" {
		return fmt.Errorf("block id is required")
	}
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to import for %s", blockID)
	}

	copied := make([]Sheet, len(sheets))
	for i, sheet := range sheets {
		copied[i] = Sheet{Name: sheet.Name, Items: append([]matching.SpreadsheetItem(nil), sheet.Items...)}
	}

	s.mu.Lock()
	s.items[blockID] = copied
	s.mu.Unlock()

	s.logger.Info("sheets imported", "block_id", blockID, "sheets", len(copied))
	return nil
}

// PfdDetection распознанные подписи на обзорной схеме PFD
func (s *Store) PfdDetection() matching.DetectionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.textract != nil && s.textract.pfd != nil {
		return cloneDetection(*s.textract.pfd)
	}
	return defaultPfdDetection()
}

// SheetNames имена листов блока в исходном порядке
func (s *Store) SheetNames(blockID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sheets, ok := s.items[blockID]
	if !ok || len(sheets) == 0 {
		return []string{DefaultSheetName}
	}
	names := make([]string, len(sheets))
	for i, sheet := range sheets {
		names[i] = sheet.Name
	}
	return names
}

// SpreadsheetItems позиции листа: фикстура, затем перечень блока, затем общий набор
func (s *Store) SpreadsheetItems(blockID, sheetName string) []matching.SpreadsheetItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spreadsheetItems(blockID, sheetName)
}

func (s *Store) spreadsheetItems(blockID, sheetName string) []matching.SpreadsheetItem {
	for _, sheet := range s.items[blockID] {
		if sheet.Name == sheetName {
			return append([]matching.SpreadsheetItem{}, sheet.Items...)
		}
	}
	if items, ok := builtinItems[blockID]; ok {
		return append([]matching.SpreadsheetItem{}, items...)
	}
	return append([]matching.SpreadsheetItem{}, genericItems...)
}

// SheetDetection распознавание листа: фикстура или сетка по позициям листа.
// Уверенность генерируется от блока и листа, поэтому повторные вызовы совпадают.
func (s *Store) SheetDetection(blockID, sheetName string) matching.DetectionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.textract != nil {
		if detection, ok := s.textract.sheets[blockID][sheetName]; ok {
			return cloneDetection(detection)
		}
	}

	items := s.spreadsheetItems(blockID, sheetName)
	faker := gofakeit.New(seedFor(blockID, sheetName))

	detected := make([]matching.DetectedTextItem, len(items))
	for i, item := range items {
		detected[i] = matching.DetectedTextItem{
			Text: item.MatchText,
			BoundingBox: geometry.BoundingBox{
				X:      gridOriginX + float64(i%gridColumns)*gridStepX,
				Y:      gridOriginY + float64(i/gridColumns)*gridStepY,
				Width:  gridWidth,
				Height: gridHeight,
			},
			Confidence: faker.Float64Range(90, 100),
		}
	}
	return matching.DetectionResult{Items: detected}
}

func seedFor(blockID, sheetName string) int64 {
	h := fnv.New64a()
	h.Write([]byte(blockID))
	h.Write([]byte{0})
	h.Write([]byte(sheetName))
	return int64(h.Sum64())
}

func cloneDetection(d matching.DetectionResult) matching.DetectionResult {
	return matching.DetectionResult{Items: append([]matching.DetectedTextItem{}, d.Items...)}
}
