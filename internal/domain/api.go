package domain

import "time"

type CreateLinkRequest struct {
	Destination string `json:"destination"`
	OwnerID     string `json:"ownerId"`
}

type CreateLinkBatchRequest struct {
	Destinations []string `json:"destinations"`
	OwnerID      string   `json:"ownerId"`
}

type LinkResponse struct {
	Code        string    `json:"code"`
	ShortURL    string    `json:"shortUrl"`
	Destination string    `json:"destination"`
	QRPayload   string    `json:"qrPayload"`
	ClickCount  int64     `json:"clickCount"`
	CreatedAt   time.Time `json:"createdAt"`
	OwnerID     string    `json:"ownerId,omitempty"`
}

type LinkBatchResponse struct {
	Links []LinkResponse `json:"links"`
}

type RecentClick struct {
	ID                    string    `json:"id"`
	Code                  string    `json:"code,omitempty"`
	Timestamp             time.Time `json:"timestamp"`
	ClientAddress         string    `json:"clientAddress,omitempty"`
	ClientAgent           string    `json:"clientAgent,omitempty"`
	RedirectLatencyMillis int64     `json:"redirectLatencyMillis"`
}

type AnalyticsReport struct {
	Code               string        `json:"code"`
	Destination        string        `json:"destination"`
	TotalClicks        int64         `json:"totalClicks"`
	AvgRedirectLatency int64         `json:"avgRedirectLatency"`
	CreatedAt          time.Time     `json:"createdAt"`
	LastAccessedAt     *time.Time    `json:"lastAccessedAt"`
	RecentClicks       []RecentClick `json:"recentClicks"`
}

// OwnerAnalyticsReport aggregates every link of one owner. TotalClicks counts
// recorded click events; TotalLinkClicks sums the per-link counters, which
// can run ahead of it while events are still buffered.
type OwnerAnalyticsReport struct {
	OwnerID         string        `json:"ownerId"`
	TotalLinks      int64         `json:"totalLinks"`
	TotalClicks     int64         `json:"totalClicks"`
	TotalLinkClicks int64         `json:"totalLinkClicks"`
	RecentClicks    []RecentClick `json:"recentClicks"`
	Links           []LinkSummary `json:"links"`
}

type LinkSummary struct {
	Code           string     `json:"code"`
	ShortURL       string     `json:"shortUrl"`
	Destination    string     `json:"destination"`
	ClickCount     int64      `json:"clickCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastAccessedAt *time.Time `json:"lastAccessedAt"`
}

type Stats struct {
	TotalLinks    int64 `json:"totalLinks"`
	TotalClicks   int64 `json:"totalClicks"`
	CacheSize     int   `json:"cacheSize"`
	IsOwnerScoped bool  `json:"isOwnerScoped"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
