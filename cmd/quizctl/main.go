package main

import "github.com/stemsi/exam-site-backend/internal/cli"

func main() {
	cli.Main()
}
