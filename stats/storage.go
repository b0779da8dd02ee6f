// Package stats persists monthly usage counters for the engine's API so
// editors can see which tools get used without any external telemetry.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// RequestKind names one counted API operation.
type RequestKind string

const (
	KindScore    RequestKind = "score"
	KindDensity  RequestKind = "density"
	KindKeywords RequestKind = "keywords"
	KindMeta     RequestKind = "meta"
	KindAudit    RequestKind = "audit"
)

// MonthlyStats aggregates request counts for one calendar month.
type MonthlyStats struct {
	ScoreRequests   int       `json:"score_requests"`
	DensityRequests int       `json:"density_requests"`
	KeywordRequests int       `json:"keyword_requests"`
	MetaRequests    int       `json:"meta_requests"`
	AuditRequests   int       `json:"audit_requests"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Storage handles persistent storage of usage statistics.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
}

// NewStorage creates a statistics store backed by dataDir/stats.json,
// loading any existing data and starting the background writer.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	// Stale months in the loaded file are pruned before serving.
	s.Cleanup()

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	// Write-then-rename keeps the file intact if the process dies mid-write.
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	cleanup := time.NewTicker(24 * time.Hour)
	defer cleanup.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		case <-cleanup.C:
			s.Cleanup()
		case <-s.done:
			return
		}
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

// requestWrite signals the background writer; a full buffer means a write
// is already pending.
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
	}
}

// Record increments the counter for one request kind in the current month.
func (s *Storage) Record(kind RequestKind) {
	month := currentMonth()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	monthly, exists := s.stats[month]
	if !exists {
		monthly = &MonthlyStats{}
		s.stats[month] = monthly
	}

	switch kind {
	case KindScore:
		monthly.ScoreRequests++
	case KindDensity:
		monthly.DensityRequests++
	case KindKeywords:
		monthly.KeywordRequests++
	case KindMeta:
		monthly.MetaRequests++
	case KindAudit:
		monthly.AuditRequests++
	}
	monthly.LastUpdated = time.Now()

	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// CurrentStats returns the counters for the current month.
func (s *Storage) CurrentStats() MonthlyStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if monthly, exists := s.stats[currentMonth()]; exists {
		return *monthly
	}
	return MonthlyStats{}
}

// MonthStats returns the counters for a specific "YYYY-MM" month.
func (s *Storage) MonthStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if monthly, exists := s.stats[yearMonth]; exists {
		return *monthly, true
	}
	return MonthlyStats{}, false
}

// Months returns all months with data, newest first.
func (s *Storage) Months() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Cleanup drops everything except the current and previous month.
func (s *Storage) Cleanup() {
	now := time.Now()
	current := now.Format("2006-01")
	previous := now.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.stats {
		if key != current && key != previous {
			delete(s.stats, key)
		}
	}

	s.requestWrite()
}

// Shutdown stops the background writer and flushes pending counters.
func (s *Storage) Shutdown() error {
	close(s.done)
	return s.save()
}
