package upload

// Envelope is the JSON wrapper the server places around every response.
type Envelope[T any] struct {
	StatusCode  uint64 `json:"statusCode"`
	Description string `json:"description"`
	Body        *T     `json:"body,omitempty"`
}

// Succeeded reports whether the envelope carries a 2x status code (20-29).
func (e Envelope[T]) Succeeded() bool {
	return e.StatusCode/10 == 2
}

// ImportResult is the server's report on a single imported chart.
type ImportResult struct {
	ChartHash  string `json:"chart_hash"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Level      uint8  `json:"level"`
	Difficulty uint8  `json:"difficulty"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// importBody mirrors ImportResult with every field optional so that absent
// keys can be told apart from zero values.
type importBody struct {
	ChartHash  *string `json:"chart_hash"`
	Title      *string `json:"title"`
	Artist     *string `json:"artist"`
	Level      *uint8  `json:"level"`
	Difficulty *uint8  `json:"difficulty"`
	Status     *string `json:"status"`
	Message    *string `json:"message"`
}

func (b importBody) missing() []string {
	var fields []string
	if b.ChartHash == nil {
		fields = append(fields, "chart_hash")
	}
	if b.Title == nil {
		fields = append(fields, "title")
	}
	if b.Artist == nil {
		fields = append(fields, "artist")
	}
	if b.Level == nil {
		fields = append(fields, "level")
	}
	if b.Difficulty == nil {
		fields = append(fields, "difficulty")
	}
	if b.Status == nil {
		fields = append(fields, "status")
	}
	if b.Message == nil {
		fields = append(fields, "message")
	}
	return fields
}

func (b importBody) result() ImportResult {
	return ImportResult{
		ChartHash:  *b.ChartHash,
		Title:      *b.Title,
		Artist:     *b.Artist,
		Level:      *b.Level,
		Difficulty: *b.Difficulty,
		Status:     *b.Status,
		Message:    *b.Message,
	}
}
