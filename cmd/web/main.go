package main

import "jobhub_backend/internal/app"

func main() {
	app.Run()
}
