package version

import (
	"fmt"
	"strconv"
	"time"
)

// Version is the application version. Can be overridden at build time via:
//
//	go build -ldflags "-X github.com/Vipin-hari/CRM/internal/version.Version=1.2.3"
var Version = "1.0"

// RepoURL is the project repository URL. Can be overridden at build time via:
//
//	go build -ldflags "-X github.com/Vipin-hari/CRM/internal/version.RepoURL=https://github.com/yourfork/CRM"
var RepoURL = "https://github.com/Vipin-hari/CRM"

// Banner prints identifying information about the server.
func Banner() string {
	y := strconv.Itoa(time.Now().Year())
	copyright := "Copyright 2025-" + y + ". All rights reserved."

	return fmt.Sprintf("%s\nCRM Server (v%s)\n%s\n", product(), Version, copyright)
}

func product() string {
	// http://patorjk.com/software/taag/#p=display&f=Standard&t=CRM
	const s = `
   ____ ____  __  __
  / ___|  _ \|  \/  |
 | |   | |_) | |\/| |
 | |___|  _ <| |  | |
  \____|_| \_\_|  |_|
`
	return s
}
