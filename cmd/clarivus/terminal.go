package main

import (
	"os"

	"golang.org/x/term"
)

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
