package tmdb

// Candidate is one search hit, reduced to the two fields the selection step
// needs. Candidates are never persisted; they live in the session cache until
// the user picks one or the session expires.
type Candidate struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Details is the subset of a movie's metadata that gets materialized into the
// collection. Year is already derived and ImgURL is fully qualified.
type Details struct {
	Title       string
	Year        int
	Description string
	ImgURL      string
}

type searchResponse struct {
	Page         int         `json:"page"`
	Results      []Candidate `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// detailsResponse uses pointers for the fields the contract requires so a
// missing key can be told apart from an empty value.
type detailsResponse struct {
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path"`
}
