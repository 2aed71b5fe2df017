package model

import "io"

// Upload is a binary stream received from a client together with its original file name.
type Upload struct {
	Filename string
	Content  io.Reader
}
