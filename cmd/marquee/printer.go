package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type printer struct {
	w    io.Writer
	json bool
}

func (p *printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
