package main

import (
	"github.com/bornholm/retrospect/internal/command"
	"github.com/bornholm/retrospect/internal/command/auth"
	"github.com/bornholm/retrospect/internal/command/report"
)

func main() {
	command.Main(
		"retrospect",
		"Generate self-reflection reports from your dated journal documents",
		report.Command(),
		auth.Command(),
	)
}
