// Package persistence stores the best run between sessions.
package persistence

import (
	"encoding/json"

	"github.com/automoto/needtopee/logging"
	"github.com/quasilyte/gdata"
)

const recordKey = "record"

// Store is the subset of *gdata.Manager used here.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedRecord represents the record data stored on disk
type SavedRecord struct {
	Best int `json:"best"`
}

var store Store

// Init opens the gdata storage for appName. On failure persistence stays
// disabled and the game runs without saving.
func Init(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	store = m
	return nil
}

// SetStore replaces the backing store. Passing nil disables persistence.
func SetStore(s Store) {
	store = s
}

// LoadBest returns the saved best flush count, or 0 when none is stored.
func LoadBest() int {
	if store == nil {
		return 0
	}

	data, err := store.LoadItem(recordKey)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not load record")
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var rec SavedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not parse saved record")
		return 0
	}
	return rec.Best
}

// SaveBest stores best unless a higher value is already saved.
func SaveBest(best int) error {
	if store == nil {
		return nil
	}
	if best <= LoadBest() {
		return nil
	}

	data, err := json.Marshal(SavedRecord{Best: best})
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not serialize record")
		return err
	}
	if err := store.SaveItem(recordKey, data); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not save record")
		return err
	}
	logging.Logger.Debug().Int("best", best).Msg("record saved")
	return nil
}
