// Package history records performed calculations so past results can be
// looked up later.
package history

import (
	"errors"
	"time"
)

// Calculation is one recorded run of a tool.
type Calculation struct {
	ID        int64                  `json:"id"`
	Tool      string                 `json:"tool"`
	Inputs    map[string]interface{} `json:"inputs,omitempty"`
	Result    string                 `json:"result"`
	CreatedAt time.Time              `json:"created_at"`
}

// ErrNotFound is returned when a calculation does not exist.
var ErrNotFound = errors.New("calculation not found")

// Store persists calculations.
type Store interface {
	Record(calc *Calculation) error
	Recent(limit int) ([]*Calculation, error)
	Get(id int64) (*Calculation, error)
	Close() error
}
