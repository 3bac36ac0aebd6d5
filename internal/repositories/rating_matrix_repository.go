package repositories

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// RatingRow is one distinct itinerary tracked in the matrix. Rows are merged
// by similarity on ingestion, never split or deleted. A missing or zero cell
// means "unrated".
type RatingRow struct {
	ItineraryText string
	Ratings       map[string]int
}

// RatingMatrixRepository owns the persisted user×itinerary rating table.
// Load never fails: a missing or malformed file is the first-write case and
// degrades to an empty table. Save rewrites the whole file, regenerating the
// header from the caller's user directory so the stored schema always matches
// the live set of users.
type RatingMatrixRepository interface {
	Load() ([]RatingRow, []string)
	Save(rows []RatingRow, userIDs []string) error
}

type csvRatingMatrixRepository struct {
	mu   sync.Mutex
	path string
}

func NewCSVRatingMatrixRepository(path string) RatingMatrixRepository {
	return &csvRatingMatrixRepository{path: path}
}

const itineraryTextColumn = "ItineraryText"

func (r *csvRatingMatrixRepository) Load() ([]RatingRow, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Open(r.path)
	if err != nil {
		return nil, nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		log.Printf("Rating matrix at %s is unreadable, starting empty: %v", r.path, err)
		return nil, nil
	}

	if len(records) == 0 || len(records[0]) == 0 || records[0][0] != itineraryTextColumn {
		log.Printf("Rating matrix at %s has an unexpected header, starting empty", r.path)
		return nil, nil
	}

	userIDs := records[0][1:]
	rows := make([]RatingRow, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) == 0 || record[0] == "" {
			continue
		}
		row := RatingRow{
			ItineraryText: record[0],
			Ratings:       make(map[string]int, len(userIDs)),
		}
		for i, userID := range userIDs {
			if i+1 >= len(record) {
				break
			}
			rating, err := strconv.Atoi(record[i+1])
			if err != nil {
				continue
			}
			row.Ratings[userID] = rating
		}
		rows = append(rows, row)
	}

	return rows, append([]string(nil), userIDs...)
}

func (r *csvRatingMatrixRepository) Save(rows []RatingRow, userIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "ratings-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)

	header := append([]string{itineraryTextColumn}, userIDs...)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(userIDs)+1)
		record = append(record, row.ItineraryText)
		for _, userID := range userIDs {
			record = append(record, strconv.Itoa(row.Ratings[userID]))
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
