package main

import "github.com/GetwithitMan/gwi-pos-sub001/cmd"

func main() {
	cmd.Execute()
}
