package railreach

// Journey is one station to terminal connection.
type Journey struct {
	TerminalCode string `json:"terminal_code"`
	Mins         int    `json:"mins"`
	Direct       bool   `json:"direct"`
}
