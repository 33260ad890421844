package domain

import "time"

type ShortLink struct {
	Code           string     `json:"code"`
	Destination    string     `json:"destination"`
	CreatedAt      time.Time  `json:"createdAt"`
	ClickCount     int64      `json:"clickCount"`
	LastAccessedAt *time.Time `json:"lastAccessedAt,omitempty"`
	OwnerID        string     `json:"ownerId,omitempty"`
	QRPayload      string     `json:"qrPayload,omitempty"`
}

// ClickEvent is one recorded redirect. ID is assigned by the store and is zero
// until the event has been persisted.
type ClickEvent struct {
	ID                    int64     `json:"-"`
	Code                  string    `json:"code"`
	Timestamp             time.Time `json:"timestamp"`
	ClientAddress         string    `json:"clientAddress,omitempty"`
	ClientAgent           string    `json:"clientAgent,omitempty"`
	RedirectLatencyMillis int64     `json:"redirectLatencyMillis"`
}

// CacheEntry is the in-memory view of a link. ClickCount is local to this
// process and may lag the store.
type CacheEntry struct {
	Destination string
	ClickCount  int64
	CreatedAt   time.Time
}

type ClientInfo struct {
	Address string
	Agent   string
}

type Resolution struct {
	Destination string
	Latency     time.Duration
	CacheHit    bool
}

type ClickSummary struct {
	Total            int64
	AvgLatencyMillis float64
}
