package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-stats-sync/internal/client"
	"github.com/MKhiriev/go-stats-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := client.NewRootCmd(info).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
