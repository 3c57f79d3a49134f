package chart

import (
	"time"

	"github.com/google/uuid"
)

// Request captures the payload accepted by the natal chart service.
type Request struct {
	Date  string   `json:"date"`
	Time  string   `json:"time"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Place string   `json:"place"`
}

// Response is serialized back to API consumers. MoonSign and
// AscendantSign are null when the birth time is unknown.
type Response struct {
	Tz            string  `json:"tz"`
	SunSign       string  `json:"sunSign"`
	MoonSign      *string `json:"moonSign"`
	AscendantSign *string `json:"ascendantSign"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}

// Coordinates is a WGS 84 point, latitude north-positive and
// longitude east-positive.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Instant is a birth moment resolved to UTC. TimeKnown is false when
// the clock time was defaulted to local noon.
type Instant struct {
	UTC       time.Time
	Zone      string
	TimeKnown bool
}

// Record is one computed chart kept in the history repository.
type Record struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	BirthDate     string
	TimeKnown     bool
	Lat           float64
	Lon           float64
	Tz            string
	SunSign       string
	MoonSign      *string
	AscendantSign *string
}

// Config wires runtime knobs for the chart domain.
type Config struct {
	RecentLimit int
}
