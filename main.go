package main

import (
	"github.com/msgdesk/app/cmd"
)

// @title msgdesk API
// @version 1.0
// @description Message inbox with LLM classification, keyword tagging and reply suggestions.

// @host  localhost:8000
// @BasePath /api/v1

func main() {
	cmd.StartApp()
}
