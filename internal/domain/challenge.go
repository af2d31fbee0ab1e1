package domain

// Challenge is the arithmetic proof-of-effort sent with anonymous writes.
// Fields hold the submitted text; an empty field counts as missing.
type Challenge struct {
	Num1   string
	Num2   string
	Answer string
}

// Complete reports whether every field was submitted.
func (c *Challenge) Complete() bool {
	return c != nil && c.Num1 != "" && c.Num2 != "" && c.Answer != ""
}
