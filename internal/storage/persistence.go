package storage

import (
	"encoding/json"

	"go.uber.org/zap"

	"stickies/internal/board"
)

// NotesKey names the stored collection. An incompatible format change gets
// a new key.
const NotesKey = "sticky-notes:v1"

// Persistence loads and saves the whole note collection. Neither direction
// reports errors to the caller.
type Persistence struct {
	kv     KV
	key    string
	logger *zap.Logger
}

func NewPersistence(kv KV, logger *zap.Logger) *Persistence {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persistence{kv: kv, key: NotesKey, logger: logger}
}

// Load returns the stored notes, or an empty collection when the key is
// missing, unreadable, or does not hold a JSON array of notes. Records
// without an id are dropped and undersized notes are grown to the default
// minimum.
func (p *Persistence) Load() []board.Note {
	data, ok, err := p.kv.Get(p.key)
	if err != nil {
		p.logger.Debug("load notes", zap.String("key", p.key), zap.Error(err))
		return []board.Note{}
	}
	if !ok || len(data) == 0 {
		return []board.Note{}
	}
	var notes []board.Note
	if err := json.Unmarshal(data, &notes); err != nil || notes == nil {
		p.logger.Debug("discarding stored notes", zap.String("key", p.key), zap.Error(err))
		return []board.Note{}
	}
	return board.Reducer{}.Normalize(notes)
}

// Save overwrites the stored collection. Failures are logged and dropped.
func (p *Persistence) Save(notes []board.Note) {
	if notes == nil {
		notes = []board.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		p.logger.Warn("encode notes", zap.Error(err))
		return
	}
	if err := p.kv.Set(p.key, data); err != nil {
		p.logger.Warn("save notes", zap.String("key", p.key), zap.Error(err))
	}
}

// Mirror returns a board observer that saves whenever the notes change.
func (p *Persistence) Mirror() board.Observer {
	return func(prev, next board.State) {
		if board.NotesChanged(prev, next) {
			p.Save(next.Notes)
		}
	}
}
