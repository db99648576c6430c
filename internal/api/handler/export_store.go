package handler

import (
	"sync"
	"time"

	"github.com/vfg2006/autosales-dashboard/pkg/utils"
)

// ExportDownload é uma planilha aguardando download
type ExportDownload struct {
	Filename  string
	Data      []byte
	ExpiresAt time.Time
}

// ExportStore guarda planilhas geradas até o download ou a expiração.
// Com maxItems entradas a planilha mais antiga é descartada.
type ExportStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	maxItems int
	items    map[string]ExportDownload
	now      func() time.Time
}

func NewExportStore(ttl time.Duration, maxItems int) *ExportStore {
	return &ExportStore{
		ttl:      ttl,
		maxItems: max(maxItems, 1),
		items:    make(map[string]ExportDownload),
		now:      time.Now,
	}
}

// Put registra a planilha e retorna o token de download com a expiração
func (s *ExportStore) Put(filename string, data []byte) (string, time.Time, error) {
	token, err := utils.GenerateID()
	if err != nil {
		return "", time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)
	for len(s.items) >= s.maxItems {
		s.evictOldestLocked()
	}

	expiresAt := now.Add(s.ttl)
	s.items[token] = ExportDownload{
		Filename:  filename,
		Data:      data,
		ExpiresAt: expiresAt,
	}
	return token, expiresAt, nil
}

func (s *ExportStore) Get(token string) (ExportDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)

	v, ok := s.items[token]
	return v, ok
}

func (s *ExportStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *ExportStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.ExpiresAt) {
			delete(s.items, k)
		}
	}
}

func (s *ExportStore) evictOldestLocked() {
	var (
		oldest    string
		oldestExp time.Time
	)
	for k, v := range s.items {
		if oldest == "" || v.ExpiresAt.Before(oldestExp) {
			oldest, oldestExp = k, v.ExpiresAt
		}
	}
	delete(s.items, oldest)
}
