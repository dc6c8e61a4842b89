package util

import (
	"fmt"
	"os"
)

var INTERNAL_ERROR = -1

func Bail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(INTERNAL_ERROR)
	}
}

func MessageBail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(INTERNAL_ERROR)
}
