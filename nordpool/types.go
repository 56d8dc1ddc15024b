package nordpool

// Raw shape of the Nordpool marketdata page 10 payload. Only the fields
// the price mapping needs are kept; the page carries a lot more.

type page struct {
	Data     data    `json:"data"`
	CacheKey string  `json:"cacheKey"`
	EndDate  *string `json:"endDate"`
	Currency string  `json:"currency"`
	PageID   int     `json:"pageId"`
}

type data struct {
	Rows          []row    `json:"Rows"`
	DataStartDate string   `json:"DataStartdate"`
	DataEndDate   string   `json:"DataEnddate"`
	Units         []string `json:"Units"`
	DateUpdated   string   `json:"DateUpdated"`
}

type row struct {
	Columns    []column `json:"Columns"`
	Name       string   `json:"Name"`
	StartTime  string   `json:"StartTime"`
	EndTime    string   `json:"EndTime"`
	IsExtraRow bool     `json:"IsExtraRow"`
	IsNtcRow   bool     `json:"IsNtcRow"`
}

type column struct {
	Index   int    `json:"Index"`
	Name    string `json:"Name"`
	Value   string `json:"Value"`
	IsValid bool   `json:"IsValid"`
}
