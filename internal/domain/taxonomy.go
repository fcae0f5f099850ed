package domain

// Category tags articles with a display color. Referenced by zero or many
// articles through a nullable foreign key.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Author struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
