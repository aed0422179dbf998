package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

func eprintln(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) error {
	_, err := fmt.Fprintf(w, format, a...)
	return err
}

func fprintln(w io.Writer, a ...interface{}) error {
	_, err := fmt.Fprintln(w, a...)
	return err
}

func utoa(u uint64) string {
	return strconv.FormatUint(u, 10)
}
