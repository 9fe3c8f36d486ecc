package models

import "io"

// DataExport is a user data export streamed back from the API. Whoever
// receives it closes Body.
type DataExport struct {
	FileName    string
	ContentType string
	Body        io.ReadCloser
}
