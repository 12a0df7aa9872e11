package domain

// EventKind identifies the class of a detected catalog transition.
type EventKind string

const (
	EventNew       EventKind = "NEW"
	EventPriceDrop EventKind = "PRICE_DROP"
	EventRestock   EventKind = "RESTOCK"
)

// ChangeEvent records one transition detected for one product during a run.
// At most one event fires per product per run.
type ChangeEvent struct {
	Kind    EventKind     `json:"event"`
	Product ProductRecord `json:"product"`
}

// RunSummary is the structured result of one full pipeline run.
type RunSummary struct {
	OK            bool          `json:"ok"`
	Category      int           `json:"category"`
	Scraped       int           `json:"scraped"`
	Notif         int           `json:"notif"`
	Notifications []ChangeEvent `json:"notifications"`
}
