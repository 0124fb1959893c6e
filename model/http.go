package model

type ChartSummary struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	NumNotes int    `json:"numNotes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
