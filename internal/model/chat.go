package model

// ChatQuery represents an incoming chat request
type ChatQuery struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id,omitempty"`
}

// Chart kind tags accepted in a response envelope
const (
	ChartBar     = "bar"
	ChartLine    = "line"
	ChartDonut   = "donut"
	ChartPie     = "pie"
	ChartArea    = "area"
	ChartScatter = "scatter"
)

// Chart is a renderable chart descriptor: rows of key/value points plus a
// kind tag the frontend maps to a chart component.
type Chart struct {
	Data        []map[string]any `json:"data"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
}

// Table is a renderable table descriptor. Every row must have exactly
// len(Headers) cells; use NewTable / AddRow to keep that invariant.
type Table struct {
	Headers     []string `json:"headers"`
	Rows        [][]any  `json:"rows"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
}

// NewTable creates an empty table with the given headers
func NewTable(title string, headers ...string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    [][]any{},
	}
}

// AddRow appends a row, padding or truncating to the header width so the
// row-length invariant always holds.
func (t *Table) AddRow(cells ...any) {
	row := make([]any, len(t.Headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	t.Rows = append(t.Rows, row)
}

// ChatResponse is the full envelope returned for a chat query
type ChatResponse struct {
	Response      string   `json:"response"`
	Charts        []Chart  `json:"charts"`
	Tables        []Table  `json:"tables"`
	SummaryPoints []string `json:"summary_points"`
}

// LoginRequest represents a (dummy) login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PlaceBidRequest represents a bid placement request
type PlaceBidRequest struct {
	AuctionID  string  `json:"auction_id" binding:"required"`
	InvestorID string  `json:"investor_id" binding:"required"`
	BidAmount  float64 `json:"bid_amount" binding:"required"`
	IsAutoBid  bool    `json:"is_auto_bid"`
}
