package game

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gridshot/pkg/logger"

	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const (
	recordsKey = "records"
	maxRecords = 10
)

// RunRecord is one cleared level. Faster clears rank higher.
type RunRecord struct {
	Time  float64   `json:"time"`
	Kills int       `json:"kills"`
	Date  time.Time `json:"date"`
}

// Records holds the best runs, fastest first
type Records struct {
	Entries []RunRecord `json:"entries"`
}

// ItemStore is the persistence backend. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// RecordStore keeps the best runs and persists them after every change.
type RecordStore struct {
	store   ItemStore
	records Records
	log     *logrus.Entry
}

// OpenRecordStore opens the per-user data directory for appName.
func OpenRecordStore(appName string) (*RecordStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewRecordStore(m), nil
}

// NewRecordStore loads existing records from store. A nil store keeps
// records in memory only. Unreadable records are discarded.
func NewRecordStore(store ItemStore) *RecordStore {
	rs := &RecordStore{store: store, log: logger.Component("records")}
	if store == nil {
		return rs
	}

	data, err := store.LoadItem(recordsKey)
	if err != nil {
		rs.log.WithError(err).Warn("could not load records")
		return rs
	}
	if len(data) == 0 {
		return rs
	}
	if err := json.Unmarshal(data, &rs.records); err != nil {
		rs.log.WithError(err).Warn("could not parse records, starting fresh")
		rs.records = Records{}
	}
	sortRecords(rs.records.Entries)
	return rs
}

// Add inserts a run and returns its 1-based rank, or 0 when it did not make
// the table.
func (rs *RecordStore) Add(rec RunRecord) int {
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	if !IsHighScore(&rs.records, rec.Time) {
		return 0
	}
	rank := GetRank(&rs.records, rec.Time)
	AddHighScore(&rs.records, rec)
	rs.save()
	return rank
}

// Best returns the fastest recorded run.
func (rs *RecordStore) Best() (RunRecord, bool) {
	if len(rs.records.Entries) == 0 {
		return RunRecord{}, false
	}
	return rs.records.Entries[0], true
}

func (rs *RecordStore) Entries() []RunRecord {
	return rs.records.Entries
}

func (rs *RecordStore) save() {
	if rs.store == nil {
		return
	}
	data, err := json.Marshal(&rs.records)
	if err != nil {
		rs.log.WithError(err).Warn("could not serialize records")
		return
	}
	if err := rs.store.SaveItem(recordsKey, data); err != nil {
		rs.log.WithError(err).Warn("could not save records")
	}
}

func sortRecords(entries []RunRecord) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
}

// AddHighScore adds a run to the table, keeping the fastest maxRecords.
func AddHighScore(records *Records, rec RunRecord) {
	records.Entries = append(records.Entries, rec)
	sortRecords(records.Entries)
	if len(records.Entries) > maxRecords {
		records.Entries = records.Entries[:maxRecords]
	}
}

// IsHighScore checks if a clear time qualifies for the table
func IsHighScore(records *Records, t float64) bool {
	if len(records.Entries) < maxRecords {
		return true
	}
	return t < records.Entries[len(records.Entries)-1].Time
}

// GetRank returns the rank (1-based) that this clear time would achieve
func GetRank(records *Records, t float64) int {
	for i, e := range records.Entries {
		if t < e.Time {
			return i + 1
		}
	}
	return len(records.Entries) + 1
}
