package model

// FilterAll is the sentinel dropdown value meaning "no constraint".
const FilterAll = "all"

// FilterSpec is a set of optional conjunctive predicates over the
// record set. An absent field or the "all" sentinel skips that
// dimension; an empty spec returns the full record set unchanged.
type FilterSpec struct {
	DateFrom    string `json:"dateFrom,omitempty"`
	DateTo      string `json:"dateTo,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	StoreCode   string `json:"storeCode,omitempty"`
	StoreNo     string `json:"storeNo,omitempty"`
	Format      string `json:"format,omitempty"`
	SubFormat   string `json:"subFormat,omitempty"`
	NPSCategory string `json:"npsCategory,omitempty"`
	SearchText  string `json:"searchText,omitempty"`
}

// IsEmpty reports whether no predicate is set.
func (f FilterSpec) IsEmpty() bool {
	return f == FilterSpec{}
}
