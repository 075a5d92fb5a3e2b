package insight

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/atelierkit/style-engine-go/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ReportCache is an explicit, injected LRU over generated reports, keyed by
// profile fingerprint. It is owned by the caller that wires it in; the
// generator itself stays pure.
type ReportCache struct {
	cache *lru.Cache[string, *domain.StyleInsightsReport]
}

func NewReportCache(size int) (*ReportCache, error) {
	cache, err := lru.New[string, *domain.StyleInsightsReport](size)
	if err != nil {
		return nil, err
	}
	return &ReportCache{cache: cache}, nil
}

func (c *ReportCache) Get(fingerprint string) (*domain.StyleInsightsReport, bool) {
	if c == nil {
		return nil, false
	}
	return c.cache.Get(fingerprint)
}

func (c *ReportCache) Add(fingerprint string, report *domain.StyleInsightsReport) {
	if c == nil {
		return
	}
	c.cache.Add(fingerprint, report)
}

// Fingerprint derives a stable key from a project id and its raw answer
// snapshot. Step keys are sorted so wizard map order cannot change the key.
func Fingerprint(projectID string, raw domain.RawAnswers) string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	h := sha256.New()
	h.Write([]byte(projectID))
	for _, k := range keys {
		h.Write([]byte{0})
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write(raw[domain.StepKey(k)])
	}
	return hex.EncodeToString(h.Sum(nil))
}
