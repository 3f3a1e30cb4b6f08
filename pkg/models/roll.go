package models

import "time"

// RollRecord is one persisted dice roll.
type RollRecord struct {
	ID            int64     `json:"id"`
	Expression    string    `json:"expression"`
	Total         int       `json:"total"`
	Rolls         []int     `json:"rolls"`
	Seed          int64     `json:"seed"`
	Deterministic bool      `json:"deterministic"`
	CreatedAt     time.Time `json:"created_at"`
}

// RollSummary aggregates history for one expression.
type RollSummary struct {
	Expression string  `json:"expression"`
	Count      int64   `json:"count"`
	Min        int     `json:"min"`
	Max        int     `json:"max"`
	Avg        float64 `json:"avg"`
}
