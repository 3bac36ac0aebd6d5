package repositories

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
)

// GenericUserID marks fallback rows not tied to any user's taste profile.
const GenericUserID = "generic"

type RecommendationEntry struct {
	UserID        string
	ItineraryText string
	MatchScore    float64
	IsGeneric     bool
}

// RecommendationRepository owns the flattened recommendation table. The
// table is derived state: Replace drops whatever was stored before and
// writes the new entries wholesale.
type RecommendationRepository interface {
	Replace(entries []RecommendationEntry) error
	ListByUser(userID string) ([]RecommendationEntry, error)
}

type csvRecommendationRepository struct {
	mu   sync.Mutex
	path string
}

func NewCSVRecommendationRepository(path string) RecommendationRepository {
	return &csvRecommendationRepository{path: path}
}

var recommendationHeader = []string{"userId", "itinerary", "matchScore", "isGeneric"}

func (r *csvRecommendationRepository) Replace(entries []RecommendationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "recommendations-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)

	if err := writer.Write(recommendationHeader); err != nil {
		tmp.Close()
		return err
	}

	for _, entry := range entries {
		record := []string{
			entry.UserID,
			entry.ItineraryText,
			strconv.FormatFloat(entry.MatchScore, 'g', -1, 64),
			strconv.FormatBool(entry.IsGeneric),
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}

func (r *csvRecommendationRepository) ListByUser(userID string) ([]RecommendationEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open recommendation table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read recommendation table: %w", err)
	}

	var entries []RecommendationEntry
	for i, record := range records {
		if i == 0 || len(record) < 4 {
			continue
		}
		if record[0] != userID {
			continue
		}
		matchScore, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		isGeneric, _ := strconv.ParseBool(record[3])
		entries = append(entries, RecommendationEntry{
			UserID:        record[0],
			ItineraryText: record[1],
			MatchScore:    matchScore,
			IsGeneric:     isGeneric,
		})
	}

	// Ties keep file order, which is the order the generator emitted.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MatchScore > entries[j].MatchScore
	})

	return entries, nil
}
