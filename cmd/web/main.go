package main

import "github.com/gadsdencode/pixprofolio/internal/app"

func main() {
	app.Run()
}
