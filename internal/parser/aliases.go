package parser

// Logical field names resolvable from raw CSV headers.
const (
	FieldResponseDate          = "responseDate"
	FieldState                 = "state"
	FieldStoreCode             = "storeCode"
	FieldStoreName             = "storeName"
	FieldCity                  = "city"
	FieldRegion                = "region"
	FieldRating                = "rating"
	FieldRecommendation        = "recommendation"
	FieldSatisfaction          = "satisfaction"
	FieldLikelihoodToRecommend = "likelihoodToRecommend"
	FieldComments              = "comments"
	FieldCategory              = "category"
	FieldCustomerName          = "customerName"
	FieldCustomerEmail         = "customerEmail"
	FieldCustomerPhone         = "customerPhone"
	FieldFormat                = "format"
	FieldSubFormat             = "subFormat"
)

// columnAliases maps each logical field to every known real-world
// header spelling, in priority order. Resolution tries aliases in this
// order and headers in file order; the earlier alias always wins.
var columnAliases = map[string][]string{
	FieldResponseDate: {
		"Response Date", "ResponseDate", "response_date", "Response_Date",
		"Date", "date", "DATE",
		"Survey Date", "SurveyDate", "survey_date",
		"Submission Date", "SubmissionDate", "submission_date",
		"Submission Time",
		"Created Date", "CreatedDate", "created_date",
		"Created At", "CreatedAt", "created_at",
		"Timestamp", "timestamp", "TIMESTAMP",
		"Date Submitted", "DateSubmitted", "date_submitted",
		"Response Time", "ResponseTime", "response_time",
	},
	FieldState: {
		"State", "state", "STATE",
		"Location State", "Store State", "State Name", "StateName",
		"Province",
	},
	FieldStoreCode: {
		"Store Code", "StoreCode", "store_code", "Store_Code",
		"Store No.", "Store No", "StoreNo", "Store_No",
		"Store ID", "StoreID", "Store_ID",
		"Store Number", "StoreNumber",
		"Outlet Code", "Location Code",
	},
	FieldStoreName: {
		"Store Name", "StoreName", "store_name", "Store_Name",
		"Store", "Store Franchise", "Franchise",
		"Outlet Name", "OutletName", "Branch",
		"Description", "Place Of Business",
	},
	FieldCity: {
		"City", "city", "CITY",
		"Store City", "StoreCity", "Location", "Town",
	},
	FieldRegion: {
		"Region", "region", "REGION",
		"Area", "Zone", "Territory", "Cluster", "Region Code",
	},
	FieldRating: {
		"Rating", "Score", "NPS Score", "NPS_Score", "NPS",
		"rating", "Customer Rating", "Overall Rating", "NPS Rating",
	},
	FieldRecommendation: {
		"Recommendation", "Would Recommend", "Recommend",
		"recommendation_score",
	},
	FieldSatisfaction: {
		"Satisfaction", "Customer Satisfaction", "CSAT",
		"satisfaction_score",
	},
	FieldLikelihoodToRecommend: {
		"Likelihood to Recommend", "How likely", "NPS Question",
		"likelihood_score",
		"On a scale of 0 to 10, with 0 being the lowest and 10 being the highest rating - how likely are you to recommend Trends to friends and family",
	},
	FieldComments: {
		"Comments", "Comment", "Feedback", "Customer Comments",
		"Customer Feedback", "Review", "Text", "Remarks", "Remark",
		"Observation",
		"Any other feedback?", "Any other feedback",
	},
	FieldCategory: {
		"Category", "Type", "Feedback Type", "Issue Type",
		"Department", "Service Type", "Transaction Type",
		"Segment", "Division",
	},
	FieldCustomerName: {
		"Customer Name", "Name", "Customer", "Respondent",
		"Respondent Name", "Client Name",
	},
	FieldCustomerEmail: {
		"Email", "Customer Email", "Email Address", "E-mail", "Contact",
	},
	FieldCustomerPhone: {
		"Phone", "Mobile", "Contact Number", "Phone Number",
		"Mobile Number",
	},
	FieldFormat: {
		"Format", "format", "Store Format", "StoreFormat",
	},
	FieldSubFormat: {
		"Sub Format", "SubFormat", "sub_format", "Sub-Format",
	},
}

// LogicalFields returns the catalog of resolvable logical fields.
func LogicalFields() []string {
	return []string{
		FieldResponseDate, FieldState, FieldStoreCode, FieldStoreName,
		FieldCity, FieldRegion, FieldRating, FieldRecommendation,
		FieldSatisfaction, FieldLikelihoodToRecommend, FieldComments,
		FieldCategory, FieldCustomerName, FieldCustomerEmail,
		FieldCustomerPhone, FieldFormat, FieldSubFormat,
	}
}
