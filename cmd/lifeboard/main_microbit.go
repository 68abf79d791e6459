//go:build tinygo && microbit

package main

import (
	"lifeboard/internal/board"
	"lifeboard/internal/microbit"
)

func main() {
	periph, err := microbit.Open()
	if err != nil {
		halt(err)
	}
	ctrl, err := board.New(board.DefaultConfig(), periph)
	if err != nil {
		halt(err)
	}
	halt(ctrl.Run())
}

// halt reports a fatal error and parks the core; there is nothing to return
// to on the device.
func halt(err error) {
	println("lifeboard: fatal:", err.Error())
	select {}
}
