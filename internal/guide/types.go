package guide

// MemoType classifies an itinerary day memo.
type MemoType string

const (
	MemoTip     MemoType = "tip"
	MemoCaution MemoType = "caution"
)

// Data is the top-level travel guide document, corresponding to data.json.
type Data struct {
	Dates       Dates       `json:"dates"`
	Location    Location    `json:"location"`
	Costs       []Cost      `json:"costs"`
	Luggage     Luggage     `json:"luggage"`
	Weather     []Weather   `json:"weather"`
	Contacts    []Contact   `json:"contacts"`
	ContactNote string      `json:"contact_note"`
	Itinerary   []Day       `json:"itinerary"`
	Checklists  []Checklist `json:"checklists"`
}

// Dates holds the key trip dates.
type Dates struct {
	Meeting   string `json:"meeting"`
	Departure string `json:"departure"`
	Return    string `json:"return"`
}

// Location holds the meeting point details.
type Location struct {
	Meeting string `json:"meeting"`
	Notes   string `json:"notes"`
}

// Cost is one line item in the cost breakdown.
type Cost struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

// Luggage holds baggage rules for the trip.
type Luggage struct {
	MaxWeight string `json:"max_weight"`
	CarryOn   string `json:"carry_on"`
	Safety    string `json:"safety"`
}

// Weather is the forecast summary for one location.
type Weather struct {
	Icon     string `json:"icon"`
	Location string `json:"location"`
	Temp     string `json:"temp"`
	Notes    string `json:"notes"`
}

// Contact is one emergency contact entry.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Day is a single itinerary day. Immutable after load; rendered once.
type Day struct {
	Day   int       `json:"day"`
	Title string    `json:"title"`
	Date  string    `json:"date"`
	Route string    `json:"route"`
	Items []DayItem `json:"items"`
	Memo  *Memo     `json:"memo,omitempty"`
}

// DayItem is one timed entry within a day.
type DayItem struct {
	Time   string `json:"time"`
	Detail string `json:"detail"`
}

// Memo is a tip or caution attached to a day.
type Memo struct {
	Type    MemoType `json:"type"`
	Content string   `json:"content"`
}

// Checklist is one packing checklist category.
type Checklist struct {
	Icon     string   `json:"icon"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}
