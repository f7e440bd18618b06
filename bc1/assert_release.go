//go:build !bc1debug

package bc1

func assert(cond bool, msg string) {}
