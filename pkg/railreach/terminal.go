package railreach

// Terminal is a London terminal station as parsed from the source document.
type Terminal struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location Location
}
