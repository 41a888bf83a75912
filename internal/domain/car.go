package domain

// Car is one vehicle record from the static catalog. The catalog is served
// read-only; price stays a display string as published in the data file.
type Car struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	BodyStyle   string `json:"bodyStyle"`
	Color       string `json:"color"`
	Price       string `json:"price"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}
