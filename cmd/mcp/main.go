package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-cost-report/cmd/mcp/tools"
	"github.com/elC0mpa/aws-cost-report/config"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("COST_REPORT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"aws-cost-report-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAWSTools(s, newReportFactory(cfg))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
