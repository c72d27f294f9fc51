package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/seabattle/pkg/cli/sh"
)

func main() {
	flag.Parse()
	if err := sh.New().Run(flag.Args()...); err != nil {
		glog.Exit(err)
	}
}
