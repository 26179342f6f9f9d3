package model

// Session identifies the operator acting on the books.
type Session struct {
	Operator string
}
