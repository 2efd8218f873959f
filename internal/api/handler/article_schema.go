package handler

// --- Request / Response types ---

// articleRequest is shared by create and update: every field is replaced
// wholesale on update, so the payloads are identical.
type articleRequest struct {
	Header    string   `json:"header" validate:"required"`
	ShortDesc string   `json:"shortDesc"`
	Text      string   `json:"text"`
	Keywords  []string `json:"keywords"`
}

type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// articleResponse is the wire shape of an article. Absent optional fields
// are omitted, never emitted as null.
type articleResponse struct {
	ID          string           `json:"id"`
	Header      string           `json:"header"`
	ShortDesc   string           `json:"shortDesc,omitempty"`
	Text        string           `json:"text,omitempty"`
	PublishDate string           `json:"publishDate,omitempty"`
	Authors     []authorResponse `json:"authors"`
	Keywords    []string         `json:"keywords"`
}
