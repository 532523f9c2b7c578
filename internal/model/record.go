package model

import "time"

// NPS category buckets. Classification is fixed: a 0-10 score of 9 or 10
// is a promoter, 7 or 8 a passive, 6 and below a detractor.
const (
	Promoter  = "Promoter"
	Passive   = "Passive"
	Detractor = "Detractor"
)

// CategoryFor returns the NPS bucket for a 0-10 score.
func CategoryFor(score int) string {
	switch {
	case score >= 9:
		return Promoter
	case score >= 7:
		return Passive
	default:
		return Detractor
	}
}

// Normalized carries the canonical view of a record under fixed keys so
// consumers never need to know the raw header spellings.
type Normalized struct {
	StoreCode    string    `json:"storeCode"`
	StoreName    string    `json:"storeName"`
	State        string    `json:"state"`
	Region       string    `json:"region"`
	City         string    `json:"city"`
	NPS          int       `json:"nps"`
	ResponseDate time.Time `json:"responseDate"`
	Comments     string    `json:"comments"`
	Category     string    `json:"category"`
	Timestamp    time.Time `json:"timestamp"`
}

// CanonicalRecord is the unit of storage and analysis: one survey
// response after normalization. Records are immutable after creation;
// the whole set is replaced wholesale on a new upload.
type CanonicalRecord struct {
	ID string `json:"id"`

	StoreCode string `json:"storeCode"`
	StoreName string `json:"storeName"`
	State     string `json:"state"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Format    string `json:"format,omitempty"`
	SubFormat string `json:"subFormat,omitempty"`

	NPSScore    int    `json:"npsScore"`
	NPSCategory string `json:"npsCategory"`

	ResponseDate time.Time `json:"responseDate"`
	UploadDate   time.Time `json:"uploadDate"`

	Comments      string `json:"comments"`
	Category      string `json:"category"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Source string `json:"source"`

	// Original row, retained for UI drill-down and debugging only.
	RawData map[string]string `json:"rawData,omitempty"`

	Normalized Normalized `json:"_normalized"`
}
