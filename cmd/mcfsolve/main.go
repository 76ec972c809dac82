package main

import (
	"github.com/LiveRamp/flowsolve/cmd/mcfsolve/cmd"
	"github.com/LiveRamp/flowsolve/pkg/mainboilerplate"
)

func main() {
	defer mainboilerplate.LogPanic()
	cmd.Execute()
}
