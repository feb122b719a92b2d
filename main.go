// Public domain.

package main

import "github.com/soniakeys/timecorr/internal/tcprog"

func main() {
	tcprog.Main()
}
