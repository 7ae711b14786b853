package dto

// Place is the JSON shape of a feed item returned by the MCP tools.
type Place struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
