// Package storage keeps per-guild bot records in a JSON-file datastore.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const historyLimit = 20

type Storage struct {
	ds *datastore.DataStore
}

// HistoryRecord is one dispatched command.
type HistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored for one guild. Direct messages share the "dm"
// record.
type Record struct {
	CommandHistory []HistoryRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// recordKey maps an invocation origin to a storage key.
func recordKey(guildID string) string {
	if guildID == "" {
		return "dm"
	}
	return guildID
}

func (s *Storage) getOrCreateRecord(key string) (*Record, error) {
	data, exists := s.ds.Get(key)
	if !exists {
		rec := &Record{}
		s.ds.Add(key, rec)
		return rec, nil
	}

	// The datastore hands back what it loaded from JSON, so round-trip
	// through json to get a typed record.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &record, nil
}

// AppendHistory records one dispatched command, keeping only the most recent
// entries.
func (s *Storage) AppendHistory(guildID string, rec HistoryRecord) error {
	key := recordKey(guildID)
	record, err := s.getOrCreateRecord(key)
	if err != nil {
		return err
	}

	record.CommandHistory = append(record.CommandHistory, rec)
	if len(record.CommandHistory) > historyLimit {
		record.CommandHistory = record.CommandHistory[len(record.CommandHistory)-historyLimit:]
	}
	s.ds.Add(key, record)
	return nil
}

// History returns the recorded commands for a guild, oldest first.
func (s *Storage) History(guildID string) ([]HistoryRecord, error) {
	record, err := s.getOrCreateRecord(recordKey(guildID))
	if err != nil {
		return nil, err
	}
	return record.CommandHistory, nil
}
