package requests

import "io"

type UploadClinicLogo struct {
	ClinicID    string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}
